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

package cli

import (
	"context"
	"errors"
	"github.com/mmmorris1975/aws-mfa-ls/config"
	"github.com/mmmorris1975/aws-mfa-ls/credentials"
	"github.com/mmmorris1975/aws-mfa-ls/identity"
)

type mockIdentityClient struct {
	id      *identity.Identity
	devices identity.MfaDevices
	err     error
}

func (c *mockIdentityClient) Identity(context.Context) (*identity.Identity, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.id, nil
}

func (c *mockIdentityClient) MfaDevices(context.Context) (identity.MfaDevices, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.devices, nil
}

func (c *mockIdentityClient) SessionIdentity(ctx context.Context, _ *credentials.Credentials) (*identity.Identity, error) {
	return c.Identity(ctx)
}

type mockConfigResolver bool

func (m *mockConfigResolver) Config(profile string) (*config.AwsConfig, error) {
	if *m {
		return nil, errors.New("error")
	}

	if len(profile) < 1 {
		profile = config.DefaultProfile
	}

	return &config.AwsConfig{
		Region:      "us-east-1",
		MfaSerial:   "arn:aws:iam::123456789012:mfa/test-device",
		Bucket:      "demo-bucket",
		ProfileName: profile,
	}, nil
}

// only returns empty credentials, so nothing reaches the AWS API.
func (m *mockConfigResolver) Credentials(string) (*config.AwsCredentials, error) {
	if *m {
		return nil, errors.New("error")
	}
	return new(config.AwsCredentials), nil
}
