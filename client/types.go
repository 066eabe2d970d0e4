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
	"github.com/aws/smithy-go/logging"
	"github.com/mmmorris1975/aws-mfa-ls/credentials"
	"github.com/mmmorris1975/aws-mfa-ls/credentials/helpers"
	"github.com/mmmorris1975/aws-mfa-ls/identity"
	"github.com/mmmorris1975/aws-mfa-ls/shared"
	"github.com/mmmorris1975/aws-mfa-ls/storage"
	"io"
	"iter"
	"os"
	"time"
)

// DefaultOptions is a set of options provided as a convenience for setting common behavior, such as logging, and
// MFA input prompting.
var DefaultOptions = &Options{
	MfaInputProvider: helpers.NewMfaTokenProvider(os.Stdin),
	Logger:           new(shared.DefaultLogger),
}

// IdentityClient defines the methods for implementations which retrieve caller identity information for AWS IAM users.
type IdentityClient interface {
	Identity(ctx context.Context) (*identity.Identity, error)
	MfaDevices(ctx context.Context) (identity.MfaDevices, error)
}

// ObjectLister is the storage capability used by the BucketLister.
type ObjectLister interface {
	ListObjects(ctx context.Context, bucket storage.BucketReference, opts ...storage.ListOption) iter.Seq2[storage.ObjectSummary, error]
}

// StorageProvider constructs an ObjectLister from session credentials.
type StorageProvider func(cfg aws.Config, creds *credentials.Credentials) (ObjectLister, error)

// OutputFunc writes a single object from a listing.
type OutputFunc func(w io.Writer, obj storage.ObjectSummary) error

type credentialBroker interface {
	Exchange(ctx context.Context, id credentials.Identity, device credentials.DeviceReference, code string, d time.Duration) (*credentials.Credentials, error)
	ClampDuration(d time.Duration) time.Duration
}

// Options provides a way to manage various attributes used by the Client Factory to configure the BucketLister built
// from the given configuration.
type Options struct {
	// MfaInputProvider is consulted for a code when none is available from the configuration.
	MfaInputProvider helpers.MfaInputProvider
	Logger           shared.Logger
	// AwsLogger and AwsLogMode enable AWS SDK request tracing.
	AwsLogger  logging.Logger
	AwsLogMode aws.ClientLogMode
	// NoClamp sends the configured duration to the token service as-is.
	NoClamp bool
	// PageSize is the number of keys requested per listing page, 0 uses the service default.
	PageSize int32
}
