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
	"fmt"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/arn"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/mmmorris1975/aws-mfa-ls/shared"
	"sort"
	"strings"
)

// ProviderAws is the name which names the provider which resolved the identity.
const ProviderAws = "AwsIdentityProvider"

var deniedCodes = map[string]bool{
	"AccessDenied":          true,
	"ExpiredToken":          true,
	"InvalidClientTokenId":  true,
	"SignatureDoesNotMatch": true,
}

type awsIdentityProvider struct {
	stsClient stsApi
	iamClient iamApi
	logger    shared.Logger
}

// NewAwsIdentityProvider creates a valid, default AwsIdentityProvider using the specified aws.Config.  The identity
// reported is the one for the credentials in cfg.
func NewAwsIdentityProvider(cfg aws.Config) *awsIdentityProvider {
	return &awsIdentityProvider{
		stsClient: sts.NewFromConfig(cfg),
		iamClient: iam.NewFromConfig(cfg),
		logger:    new(shared.DefaultLogger),
	}
}

// WithLogger is a fluent method used or setting the logger implementation for the identity provider.
func (p *awsIdentityProvider) WithLogger(l shared.Logger) *awsIdentityProvider {
	if l != nil {
		p.logger = l
	}
	return p
}

// Identity retrieves the Identity information for the AWS IAM user.
func (p *awsIdentityProvider) Identity(ctx context.Context) (*Identity, error) {
	out, err := p.stsClient.GetCallerIdentity(ctx, new(sts.GetCallerIdentityInput))
	if err != nil {
		p.logger.Errorf("error calling GetCallerIdentity: %v", err)
		return nil, classifyError(err)
	}

	a, err := arn.Parse(aws.ToString(out.Arn))
	if err != nil {
		return nil, shared.Wrap(shared.ErrTransientService, fmt.Errorf("invalid identity ARN: %w", err))
	}

	id := &Identity{
		Provider: ProviderAws,
		Account:  aws.ToString(out.Account),
		Arn:      a.String(),
	}

	r := strings.Split(a.Resource, "/")
	id.IdentityType = r[0]
	id.Username = r[len(r)-1]

	return id, nil
}

// MfaDevices retrieves the serial numbers of the MFA devices registered to the IAM user.  If user is not provided
// the devices for the calling user are returned.  The list is sorted.
func (p *awsIdentityProvider) MfaDevices(ctx context.Context, user ...string) (MfaDevices, error) {
	in := new(iam.ListMFADevicesInput)
	if len(user) > 0 && len(user[0]) > 0 {
		in.UserName = aws.String(user[0])
	}

	devices := make(MfaDevices, 0)
	pg := iam.NewListMFADevicesPaginator(p.iamClient, in)
	for pg.HasMorePages() {
		out, err := pg.NextPage(ctx)
		if err != nil {
			p.logger.Errorf("error listing MFA devices: %v", err)
			return nil, classifyError(err)
		}

		for _, d := range out.MFADevices {
			p.logger.Debugf("found MFA device: %s", aws.ToString(d.SerialNumber))
			devices = append(devices, aws.ToString(d.SerialNumber))
		}
	}

	sort.Strings(devices)
	return devices, nil
}

func classifyError(err error) error {
	if deniedCodes[shared.ApiErrorCode(err)] {
		return shared.Wrap(shared.ErrAccessDenied, err)
	}
	return shared.Wrap(shared.ErrTransientService, err)
}
