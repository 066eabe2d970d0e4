/*
 * Copyright (c) 2026 Michael Morris. All Rights Reserved.
 *
 * Licensed under the MIT license (the "License"). You may not use this file except in compliance
 * with the License. A copy of the License is located at
 *
 * https://github.com/mmmorris1975/aws-mfa-ls/blob/master/LICENSE
 *
 * or in the "license" file accompanying this file. This file is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License
 * for the specific language governing permissions and limitations under the License.
 */

package client

import (
	"context"
	"errors"
	"fmt"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscreds "github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/mmmorris1975/aws-mfa-ls/config"
	"github.com/mmmorris1975/aws-mfa-ls/credentials/helpers"
	"github.com/mmmorris1975/aws-mfa-ls/shared"
	"github.com/mmmorris1975/aws-mfa-ls/storage"
)

// DefaultRegion is the region used for the AWS API when none is configured.
const DefaultRegion = "us-east-1"

// Factory builds clients from resolved configuration.
type Factory struct {
	resolver config.Resolver
	options  *Options
}

// NewClientFactory uses the provided Resolver to look up the long-term credentials for a configuration, and the
// supplied Options to further affect the behavior of the returned clients.
func NewClientFactory(res config.Resolver, opts *Options) *Factory {
	if opts == nil {
		opts = DefaultOptions
	}
	return &Factory{resolver: res, options: opts}
}

// Get returns a BucketLister for the given configuration, which is expected to be fully resolved.  The long-term
// credentials for the profile (or its source profile) are resolved and checked here, so a bad configuration is
// reported before any MFA code is requested.
func (f *Factory) Get(ctx context.Context, cfg *config.AwsConfig) (*BucketLister, error) {
	if cfg == nil {
		return nil, errors.New("invalid configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	device, err := cfg.MfaDevice()
	if err != nil {
		return nil, err
	}

	bucket := storage.BucketReference(cfg.Bucket)
	if err = bucket.Validate(); err != nil {
		return nil, err
	}

	creds, err := f.identityCredentials(cfg)
	if err != nil {
		return nil, err
	}

	awsCfg, err := f.awsConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	listerCfg := &BucketListerConfig{
		Identity: creds.Identity(),
		Device:   device,
		Duration: cfg.SessionCredentialDuration(),
		Bucket:   bucket,
		PageSize: f.options.PageSize,
		NoClamp:  f.options.NoClamp,
		TokenProvider: helpers.Chain(
			helpers.NewStaticTokenProvider(cfg.MfaCode),
			helpers.NewTotpTokenProvider(cfg.MfaTotpSecret),
			f.options.MfaInputProvider,
		),
		Logger: f.options.Logger,
	}

	f.logger().Debugf("configured bucket lister for profile %s, device %s, bucket %s", cfg.ProfileName, device, bucket)
	return NewBucketLister(awsCfg, listerCfg), nil
}

// IdentityClient returns an IdentityClient using the long-term credentials for the given configuration.  No MFA
// code is required.
func (f *Factory) IdentityClient(ctx context.Context, cfg *config.AwsConfig) (IdentityClient, error) {
	if cfg == nil {
		return nil, errors.New("invalid configuration")
	}

	creds, err := f.identityCredentials(cfg)
	if err != nil {
		return nil, err
	}

	awsCfg, err := f.awsConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	awsCfg.Credentials = awscreds.NewStaticCredentialsProvider(creds.AccessKeyId, creds.SecretAccessKey, "")

	return NewIdentityClient(awsCfg, f.options.Logger), nil
}

func (f *Factory) identityCredentials(cfg *config.AwsConfig) (*config.AwsCredentials, error) {
	profile := cfg.CredentialsProfile()

	creds, err := f.resolver.Credentials(profile)
	if err != nil {
		return nil, shared.Wrap(shared.ErrAuthenticationFailed, err)
	}

	if err = creds.Identity().Validate(); err != nil {
		return nil, shared.Wrap(shared.ErrAuthenticationFailed, fmt.Errorf("profile %s: %w", profile, err))
	}
	return creds, nil
}

// awsConfig loads the AWS SDK configuration.  The credentials provider is anonymous, each client sets the
// credentials it is allowed to use.
func (f *Factory) awsConfig(ctx context.Context, cfg *config.AwsConfig) (aws.Config, error) {
	region := cfg.Region
	if len(region) < 1 {
		region = DefaultRegion
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(aws.AnonymousCredentials{}),
	}

	if f.options.AwsLogger != nil {
		opts = append(opts, awsconfig.WithLogger(f.options.AwsLogger), awsconfig.WithClientLogMode(f.options.AwsLogMode))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, err
	}
	return awsCfg, nil
}

func (f *Factory) logger() shared.Logger {
	return shared.LoggerOrDefault(f.options.Logger)
}
