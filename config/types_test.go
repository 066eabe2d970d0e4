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

package config

import (
	"errors"
	"time"
)

const testMfa = "arn:aws:iam::123456789012:mfa/test-device"

type badLoader bool

func (l *badLoader) Config(string, ...interface{}) (*AwsConfig, error) {
	return nil, errors.New("bad config")
}

func (l *badLoader) Credentials(string, ...interface{}) (*AwsCredentials, error) {
	return nil, errors.New("bad credentials")
}

type simpleLoader bool

func (l *simpleLoader) Config(string, ...interface{}) (*AwsConfig, error) {
	c := &AwsConfig{
		Region: "mockRegion",
	}
	return c, nil
}

func (l *simpleLoader) Credentials(string, ...interface{}) (*AwsCredentials, error) {
	return new(AwsCredentials), nil
}

type mfaLoader bool

func (l *mfaLoader) Config(string, ...interface{}) (*AwsConfig, error) {
	c := &AwsConfig{
		SessionTokenDuration: 8 * time.Hour,
		MfaSerial:            testMfa,
		Bucket:               "demo-bucket",
	}
	return c, nil
}

func (l *mfaLoader) Credentials(string, ...interface{}) (*AwsCredentials, error) {
	return &AwsCredentials{AccessKeyId: "AKIAMOCK", SecretAccessKey: "mockSecret"}, nil
}

type sourceProfileLoader bool

func (l *sourceProfileLoader) Config(string, ...interface{}) (*AwsConfig, error) {
	src := &AwsConfig{
		SessionTokenDuration: 4 * time.Hour,
		MfaSerial:            testMfa,
		Region:               "mockRegion",
	}
	c := &AwsConfig{
		Bucket:        "demo-bucket",
		Region:        "us-west-2",
		SrcProfile:    "mock",
		sourceProfile: src,
	}
	return c, nil
}

func (l *sourceProfileLoader) Credentials(string, ...interface{}) (*AwsCredentials, error) {
	return new(AwsCredentials), nil
}
