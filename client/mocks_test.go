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
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	ststypes "github.com/aws/aws-sdk-go-v2/service/sts/types"
	"github.com/aws/smithy-go"
	"github.com/mmmorris1975/aws-mfa-ls/config"
	"github.com/mmmorris1975/aws-mfa-ls/credentials"
	"github.com/mmmorris1975/aws-mfa-ls/shared"
	"github.com/mmmorris1975/aws-mfa-ls/storage"
	"strings"
	"time"
)

const (
	testKey    = "AKIA-TEST"
	testDevice = "arn:aws:iam::123456789012:mfa/test-device"
	testBucket = "demo-bucket"
)

type mockResolver bool

func (r *mockResolver) Config(profile string) (*config.AwsConfig, error) {
	if profile == "error" {
		return nil, errors.New("config error")
	}

	return &config.AwsConfig{
		ProfileName:     profile,
		MfaSerial:       testDevice,
		Bucket:          testBucket,
		DurationSeconds: 3600,
		Region:          "us-east-1",
	}, nil
}

func (r *mockResolver) Credentials(profile string) (*config.AwsCredentials, error) {
	switch profile {
	case "error":
		return nil, errors.New("credentials error")
	case "session":
		return &config.AwsCredentials{AccessKeyId: "ASIA", SecretAccessKey: "sk", SessionToken: "token"}, nil
	case "empty":
		return new(config.AwsCredentials), nil
	}
	return &config.AwsCredentials{AccessKeyId: testKey, SecretAccessKey: "mockSecret"}, nil
}

// stsMock only accepts the code 123456 for testDevice, and each code only once.
type stsMock struct {
	calls    int
	used     bool
	identity aws.Credentials
	duration time.Duration
	issued   time.Time
}

func (m *stsMock) GetSessionToken(ctx context.Context, in *sts.GetSessionTokenInput, optFns ...func(*sts.Options)) (*sts.GetSessionTokenOutput, error) {
	m.calls++

	o := new(sts.Options)
	for _, f := range optFns {
		f(o)
	}

	v, err := o.Credentials.Retrieve(ctx)
	if err != nil {
		return nil, err
	}
	m.identity = v
	m.duration = time.Duration(aws.ToInt32(in.DurationSeconds)) * time.Second

	if aws.ToString(in.SerialNumber) != testDevice || aws.ToString(in.TokenCode) != "123456" || m.used {
		return nil, &smithy.GenericAPIError{
			Code:    "AccessDenied",
			Message: "MultiFactorAuthentication failed with invalid MFA one time pass code.",
		}
	}
	m.used = true

	if m.issued.IsZero() {
		m.issued = time.Now()
	}

	return &sts.GetSessionTokenOutput{
		Credentials: &ststypes.Credentials{
			AccessKeyId:     aws.String(fmt.Sprintf("ASIAM0CK%d", m.issued.Unix())),
			SecretAccessKey: aws.String("s3cR3TkEy"),
			SessionToken:    aws.String("t0k3N"),
			Expiration:      aws.Time(m.issued.Add(m.duration)),
		},
	}, nil
}

// s3Mock returns the keys matching the request prefix as a single page for testBucket.  When errAfter is set, the page following the first
// errAfter keys fails with err.
type s3Mock struct {
	keys     []string
	errAfter int
	err      error
}

func (m *s3Mock) ListObjectsV2(_ context.Context, in *s3.ListObjectsV2Input, _ ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	if aws.ToString(in.Bucket) != testBucket {
		return nil, &s3types.NoSuchBucket{}
	}

	keys := m.keys
	if m.err != nil {
		if in.ContinuationToken != nil {
			return nil, m.err
		}
		keys = keys[:m.errAfter]
	}

	out := &s3.ListObjectsV2Output{IsTruncated: aws.Bool(m.err != nil)}
	if m.err != nil {
		out.NextContinuationToken = aws.String("next")
	}

	for i, k := range keys {
		if !strings.HasPrefix(k, aws.ToString(in.Prefix)) {
			continue
		}

		out.Contents = append(out.Contents, s3types.Object{
			Key:          aws.String(k),
			Size:         aws.Int64(int64(1024 * (i + 1))),
			LastModified: aws.Time(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)),
		})
	}
	return out, nil
}

// storageRecorder is a StorageProvider which counts its calls, and lists objects from an s3Mock.
type storageRecorder struct {
	s3    *s3Mock
	calls int
	creds *credentials.Credentials
}

func (r *storageRecorder) provider(cfg aws.Config, creds *credentials.Credentials) (ObjectLister, error) {
	r.calls++
	r.creds = creds

	c, err := storage.NewBucketClient(cfg, creds)
	if err != nil {
		return nil, err
	}
	c.Client = r.s3
	c.Logger = new(shared.DefaultLogger)
	return c, nil
}
