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

package identity

import (
	"context"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// Identity is the type used to store information about the IAM principal making AWS API calls.
type Identity struct {
	IdentityType string
	Provider     string
	Username     string
	Account      string
	Arn          string
}

// MfaDevices is the list of MFA device serial numbers (or virtual device ARNs) registered to a user.
type MfaDevices []string

// Provider is the interface which conforming identity providers will adhere to.
type Provider interface {
	// Identity will return the Identity information for the credentials used by the provider.
	Identity(ctx context.Context) (*Identity, error)
	// MfaDevices returns the MFA devices for the provided user, or the calling user if none is given.
	MfaDevices(ctx context.Context, user ...string) (MfaDevices, error)
}

type stsApi interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

type iamApi interface {
	iam.ListMFADevicesAPIClient
}
