package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path"
	"time"

	"github.com/spf13/cobra"

	"timesheet.app/timesheet/config"
	gateway "timesheet.app/timesheet/gateway/v1"
	"timesheet.app/timesheet/infrastructure/communication"
	"timesheet.app/timesheet/infrastructure/filesystem"
	"timesheet.app/timesheet/reports"
	"timesheet.app/timesheet/timesheet/model"
)

var (
	exportFormat   string
	exportEncoding string
	exportOutput   string
	exportBucket   string
	exportMailTo   []string
	exportEmployee int
	exportProject  int
	exportYear     int
	exportMonth    int
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export timesheet entries as xlsx or csv",
	Long: `export loads the filtered entries from the gateway and writes them to a
file, to the export bucket or to stdout. With --mail-to the file is also sent
as an email attachment.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "xlsx", "Output format: xlsx, csv")
	exportCmd.Flags().StringVar(&exportEncoding, "encoding", "windows-1252", "CSV encoding: utf-8, windows-1252, iso-8859-1")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file, - for stdout")
	exportCmd.Flags().StringVar(&exportBucket, "bucket", "", "Upload to this S3 bucket instead of a file")
	exportCmd.Flags().StringSliceVar(&exportMailTo, "mail-to", nil, "Email the export to these addresses")
	exportCmd.Flags().IntVar(&exportEmployee, "employee", 0, "Filter by employee id")
	exportCmd.Flags().IntVar(&exportProject, "project", 0, "Filter by project id")
	exportCmd.Flags().IntVar(&exportYear, "year", 0, "Filter by year")
	exportCmd.Flags().IntVar(&exportMonth, "month", 0, "Filter by month (1-12)")
}

func optional(v int) *int {
	if v == 0 {
		return nil
	}
	return &v
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg, loc, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	if cfg.Gateway.URL == "" {
		return config.ErrGatewayNotConfigured
	}

	filter := model.EntryFilter{
		EmployeeID: optional(exportEmployee),
		ProjectID:  optional(exportProject),
		Year:       optional(exportYear),
		Month:      optional(exportMonth),
	}
	gw := gateway.NewGatewayClient(cfg.Gateway.URL, cfg.Gateway.Timeout)
	data, err := reports.Fetch(ctx, gw, filter, loc)
	if err != nil {
		return err
	}

	var (
		buf      bytes.Buffer
		mime     string
		filename = "timesheet-" + time.Now().In(loc).Format("20060102")
	)
	switch exportFormat {
	case "xlsx":
		err = reports.WriteXLSX(&buf, data.Rows, data.Weeks)
		mime, filename = reports.XLSXMime, filename+".xlsx"
	case "csv":
		err = reports.WriteCSV(&buf, data.Rows, exportEncoding)
		mime, filename = reports.CSVMime, filename+".csv"
	default:
		return fmt.Errorf("unsupported format %q", exportFormat)
	}
	if err != nil {
		return err
	}

	bucket := exportBucket
	if bucket == "" && exportOutput == "" {
		bucket = cfg.Export.Bucket
	}
	switch {
	case bucket != "":
		archive, err := filesystem.ConnectArchive(ctx, bucket)
		if err != nil {
			return err
		}
		key := path.Join(cfg.Export.Prefix, filename)
		if err := archive.WriteFile(ctx, key, mime, buf.Bytes()); err != nil {
			return err
		}
		fmt.Printf("[INFO] exported %d rows to s3://%s/%s\n", len(data.Rows), bucket, key)
	case exportOutput == "-":
		if _, err := os.Stdout.Write(buf.Bytes()); err != nil {
			return err
		}
	default:
		out := exportOutput
		if out == "" {
			out = filename
		}
		if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
			return err
		}
		fmt.Printf("[INFO] exported %d rows to %s\n", len(data.Rows), out)
	}

	if len(exportMailTo) == 0 {
		return nil
	}
	email, err := communication.ConnectEmail(ctx, cfg.Email.Region, cfg.Email.From, exportMailTo)
	if err != nil {
		return err
	}
	return email.Send(ctx, &communication.EmailInfo{
		Subject: "Timesheet export " + filename,
		Text:    fmt.Sprintf("%d entries, %d weeks.", len(data.Rows), len(data.Weeks)),
		Attachments: []communication.Attachment{
			{Filename: filename, ContentType: mime, Content: buf.Bytes()},
		},
	})
}
