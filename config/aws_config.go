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
	"fmt"
	"github.com/mmmorris1975/aws-mfa-ls/credentials"
	"time"
)

// AwsConfig is the type used to hold the configuration for a profile.  Fields which can be loaded from the AWS config
// file have the key name in the "ini" tag, and those which can be set from environment variables have the variable
// name in the "env" tag.
type AwsConfig struct {
	SessionTokenDuration time.Duration `ini:"session_token_duration" env:"SESSION_TOKEN_DURATION"`
	DurationSeconds      int64         `ini:"duration_seconds" env:"DURATION_SECONDS"`
	MfaSerial            string        `ini:"mfa_serial" env:"MFA_SERIAL"`
	MfaCode              string        `env:"MFA_CODE"`        // only env var supported, since this value frequently changes over time
	MfaTotpSecret        string        `env:"MFA_TOTP_SECRET"` // secret seed, never read from (or written to) a file
	Region               string        `ini:"region" env:"AWS_REGION,AWS_DEFAULT_REGION"`
	Bucket               string        `ini:"bucket" env:"MFA_LS_BUCKET"`
	SrcProfile           string        `ini:"source_profile"` // env var not supported, only found in config file
	ProfileName          string        // does not participate in value Marshal/Unmarshal, explicitly set
	sourceProfile        *AwsConfig
}

// SourceProfile returns a resolved AwsConfig object for the SrcProfile field in the AwsConfig object.
func (c *AwsConfig) SourceProfile() *AwsConfig {
	return c.sourceProfile
}

// CredentialsProfile returns the name of the profile holding the long-term credentials for this configuration, which
// is the source profile if one is configured.
func (c *AwsConfig) CredentialsProfile() string {
	if len(c.SrcProfile) > 0 {
		return c.SrcProfile
	}

	if len(c.ProfileName) > 0 {
		return c.ProfileName
	}
	return DefaultProfile
}

// SessionCredentialDuration normalizes the selection of the session credential duration.  If the SessionTokenDuration
// field has a value greater than 0, it will return that value directly.  Otherwise the value of the DurationSeconds
// field will be converted to a time.Duration type and returned.
func (c *AwsConfig) SessionCredentialDuration() time.Duration {
	if c.SessionTokenDuration > 0 {
		return c.SessionTokenDuration
	}
	return time.Duration(c.DurationSeconds) * time.Second
}

// MfaDevice returns the validated credentials.DeviceReference for the MfaSerial field.
func (c *AwsConfig) MfaDevice() (credentials.DeviceReference, error) {
	return credentials.NewDeviceReference(c.MfaSerial)
}

// MergeIn takes the settings in the provided "config" argument and applies them to the existing AwsConfig object.
// New values are applied only if they are not the field type's zero value, the last (non-zero) value take priority.
//
//nolint:gocyclo
func (c *AwsConfig) MergeIn(config ...*AwsConfig) {
	for _, cfg := range config {
		if cfg == nil {
			continue
		}

		if cfg.SessionTokenDuration > 0 {
			c.SessionTokenDuration = cfg.SessionTokenDuration
		}

		if cfg.DurationSeconds > 0 {
			c.DurationSeconds = cfg.DurationSeconds
		}

		if len(cfg.MfaSerial) > 0 {
			c.MfaSerial = cfg.MfaSerial
		}

		if len(cfg.MfaCode) > 0 {
			c.MfaCode = cfg.MfaCode
		}

		if len(cfg.MfaTotpSecret) > 0 {
			c.MfaTotpSecret = cfg.MfaTotpSecret
		}

		if len(cfg.Region) > 0 {
			c.Region = cfg.Region
		}

		if len(cfg.Bucket) > 0 {
			c.Bucket = cfg.Bucket
		}

		if len(cfg.SrcProfile) > 0 {
			c.SrcProfile = cfg.SrcProfile
			c.sourceProfile = cfg.sourceProfile
		}
	}
}

// Validate checks that the current configuration settings are sane.
// It performs the following tests:
//   - Check that sourceProfile != nil if SrcProfile is set
//   - Check that the duration settings are not negative
//   - Check that the MFA serial number is set, and is a serial number or virtual MFA device ARN
func (c *AwsConfig) Validate() error {
	if len(c.SrcProfile) > 0 && c.sourceProfile == nil {
		return errors.New("found source profile name but no source profile data")
	}

	if c.SessionTokenDuration < 0 || c.DurationSeconds < 0 {
		return errors.New("credential duration can not be negative")
	}

	if _, err := c.MfaDevice(); err != nil {
		return fmt.Errorf("invalid mfa_serial: %w", err)
	}

	return nil
}
