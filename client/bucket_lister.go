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
	"fmt"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/mmmorris1975/aws-mfa-ls/credentials"
	"github.com/mmmorris1975/aws-mfa-ls/credentials/helpers"
	"github.com/mmmorris1975/aws-mfa-ls/identity"
	"github.com/mmmorris1975/aws-mfa-ls/shared"
	"github.com/mmmorris1975/aws-mfa-ls/storage"
	"io"
	"time"
)

// BucketListerConfig is the configuration for a single run of a BucketLister.
type BucketListerConfig struct {
	Identity      credentials.Identity
	Device        credentials.DeviceReference
	Duration      time.Duration
	Bucket        storage.BucketReference
	Prefix        string
	PageSize      int32
	NoClamp       bool
	TokenProvider helpers.MfaInputProvider
	Logger        shared.Logger
	// OnCredentials is called with the session credentials, before the listing is requested.
	OnCredentials func(*credentials.Credentials)
	// Output writes each object, defaulting to WriteKey.
	Output OutputFunc
}

// BucketLister obtains session credentials for an IAM user with an MFA code, and lists the contents of a bucket
// using those credentials.
type BucketLister struct {
	broker     credentialBroker
	newStorage StorageProvider
	session    aws.Config
	cfg        *BucketListerConfig
}

// NewBucketLister creates a BucketLister which uses the STS and S3 services configured by the provided aws.Config.
// The credentials in cfg are never used.
func NewBucketLister(cfg aws.Config, listerCfg *BucketListerConfig) *BucketLister {
	b := credentials.NewSessionTokenBroker(cfg)
	b.Logger = shared.LoggerOrDefault(listerCfg.Logger)

	return &BucketLister{
		broker:     b,
		newStorage: NewStorage,
		session:    cfg,
		cfg:        listerCfg,
	}
}

// WithPrefix limits the listing to keys starting with prefix.
func (l *BucketLister) WithPrefix(prefix string) *BucketLister {
	l.cfg.Prefix = prefix
	return l
}

// WithOutput sets the function used to write each object.
func (l *BucketLister) WithOutput(f OutputFunc) *BucketLister {
	l.cfg.Output = f
	return l
}

// WithCredentialsHook sets a function to call with the session credentials before the listing starts.
func (l *BucketLister) WithCredentialsHook(f func(*credentials.Credentials)) *BucketLister {
	l.cfg.OnCredentials = f
	return l
}

// NewStorage is the default StorageProvider, returning a storage.BucketClient.
func NewStorage(cfg aws.Config, creds *credentials.Credentials) (ObjectLister, error) {
	c, err := storage.NewBucketClient(cfg, creds)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Run reads an MFA code, exchanges it for session credentials, then writes the objects in the bucket to w as they
// are received.  The first failure stops the run and is returned as-is; objects already written are not retracted.
func (l *BucketLister) Run(ctx context.Context, w io.Writer) error {
	logger := shared.LoggerOrDefault(l.cfg.Logger)

	if l.cfg.TokenProvider == nil {
		return shared.Wrap(shared.ErrInputUnavailable, helpers.ErrNotConfigured)
	}

	code, err := l.cfg.TokenProvider.ReadInput()
	if err != nil {
		return err
	}

	d := l.cfg.Duration
	if !l.cfg.NoClamp {
		d = l.broker.ClampDuration(d)
	}

	creds, err := l.broker.Exchange(ctx, l.cfg.Identity, l.cfg.Device, code, d)
	if err != nil {
		return err
	}
	logger.Debugf("obtained session credentials %s, valid until %s", creds.AccessKeyId(), creds.Expiration())

	if l.cfg.OnCredentials != nil {
		l.cfg.OnCredentials(creds)
	}

	sc, err := l.newStorage(l.session, creds)
	if err != nil {
		return err
	}

	out := l.cfg.Output
	if out == nil {
		out = WriteKey
	}

	var n int
	for obj, err := range sc.ListObjects(ctx, l.cfg.Bucket, storage.WithPrefix(l.cfg.Prefix), storage.WithPageSize(l.cfg.PageSize)) {
		if err != nil {
			return err
		}

		if err = out(w, obj); err != nil {
			return err
		}
		n++
	}

	logger.Debugf("listed %d objects in bucket %s", n, l.cfg.Bucket)
	return nil
}

// SessionIdentity returns the identity for the provided session credentials.
func (l *BucketLister) SessionIdentity(ctx context.Context, creds *credentials.Credentials) (*identity.Identity, error) {
	cfg := l.session.Copy()
	cfg.Credentials = creds
	return NewIdentityClient(cfg, l.cfg.Logger).Identity(ctx)
}

// WriteKey writes the object key followed by a newline.
func WriteKey(w io.Writer, obj storage.ObjectSummary) error {
	_, err := fmt.Fprintln(w, obj.Key)
	return err
}
