package config

import (
	"context"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// Secrets is the YAML document stored in the SSM parameter.
type Secrets struct {
	GatewayURL    string `yaml:"gateway_url"`
	SigningSecret string `yaml:"signing_secret"`
	DSN           string `yaml:"dsn"`
	SlackToken    string `yaml:"slack_token"`
}

type ParameterGetter interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// LoadSecrets overlays the secrets stored in c.SSMParameter. Nothing happens
// when no parameter is configured.
func (c *Config) LoadSecrets(ctx context.Context) error {
	if c.SSMParameter == "" {
		return nil
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return fmt.Errorf("load aws config: %w", err)
	}
	return c.ApplySecrets(ctx, ssm.NewFromConfig(awsCfg))
}

func (c *Config) ApplySecrets(ctx context.Context, client ParameterGetter) error {
	out, err := client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(c.SSMParameter),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return fmt.Errorf("get parameter: %w", err)
	}
	if out.Parameter == nil || out.Parameter.Value == nil {
		return fmt.Errorf("parameter %s has no value", c.SSMParameter)
	}

	var secrets Secrets
	if err := yaml.Unmarshal([]byte(*out.Parameter.Value), &secrets); err != nil {
		return fmt.Errorf("unmarshal yaml: %w", err)
	}

	overlay := func(target *string, v string) {
		if v != "" {
			*target = v
		}
	}
	overlay(&c.Gateway.URL, secrets.GatewayURL)
	overlay(&c.Auth.SigningSecret, secrets.SigningSecret)
	overlay(&c.Database.DSN, secrets.DSN)
	overlay(&c.Slack.Token, secrets.SlackToken)
	return nil
}
