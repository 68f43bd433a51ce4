package aws

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	ssmTypes "github.com/aws/aws-sdk-go-v2/service/ssm/types"

	"github.com/vietdv277/scalekit/pkg/provider"
)

// GetParameter returns the decrypted value of an SSM parameter
func (c *Client) GetParameter(ctx context.Context, name string) (string, error) {
	output, err := c.SSM.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		var notFound *ssmTypes.ParameterNotFound
		if errors.As(err, &notFound) {
			return "", fmt.Errorf("parameter %q: %w", name, provider.ErrNotFound)
		}
		return "", fmt.Errorf("failed to get parameter %s: %w", name, err)
	}

	if output.Parameter == nil {
		return "", fmt.Errorf("parameter %q: %w", name, provider.ErrNotFound)
	}

	return deref(output.Parameter.Value), nil
}
