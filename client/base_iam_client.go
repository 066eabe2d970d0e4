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
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/mmmorris1975/aws-mfa-ls/identity"
	"github.com/mmmorris1975/aws-mfa-ls/shared"
)

type baseIamClient struct {
	ident identity.Provider
}

// NewIdentityClient returns an IdentityClient which reports on the credentials configured in cfg.
func NewIdentityClient(cfg aws.Config, logger shared.Logger) *baseIamClient {
	return &baseIamClient{ident: identity.NewAwsIdentityProvider(cfg).WithLogger(logger)}
}

// Identity is the implementation of the IdentityClient interface for retrieving identity information for IAM users.
func (c *baseIamClient) Identity(ctx context.Context) (*identity.Identity, error) {
	return c.ident.Identity(ctx)
}

// MfaDevices is the implementation of the IdentityClient interface for listing the MFA devices of the calling user.
func (c *baseIamClient) MfaDevices(ctx context.Context) (identity.MfaDevices, error) {
	return c.ident.MfaDevices(ctx)
}
