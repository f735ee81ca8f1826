package filesystem

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryS3 is a single-bucket object store.
type memoryS3 struct {
	objects map[string][]byte
}

func (m *memoryS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	b, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	m.objects[aws.ToString(params.Key)] = b
	return &s3.PutObjectOutput{}, nil
}

func (m *memoryS3) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	b, ok := m.objects[aws.ToString(params.Key)]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(b))}, nil
}

func (m *memoryS3) ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	out := &s3.ListObjectsV2Output{}
	for key := range m.objects {
		if strings.HasPrefix(key, aws.ToString(params.Prefix)) {
			out.Contents = append(out.Contents, types.Object{Key: aws.String(key)})
		}
	}
	return out, nil
}

func TestArchive(t *testing.T) {
	store := &memoryS3{objects: map[string][]byte{"other/readme.txt": []byte("x")}}
	archive := NewArchive(store, "timesheet-exports")
	ctx := context.Background()

	require.NoError(t, archive.WriteFile(ctx, "exports/2024-06.xlsx", "application/octet-stream", []byte("report")))

	keys, err := archive.ListFiles(ctx, "exports/")
	require.NoError(t, err)
	assert.Equal(t, []string{"exports/2024-06.xlsx"}, keys)

	var buf bytes.Buffer
	require.NoError(t, archive.ReadFile(ctx, "exports/2024-06.xlsx", &buf))
	assert.Equal(t, "report", buf.String())

	assert.Error(t, archive.ReadFile(ctx, "missing.xlsx", &buf))
}
