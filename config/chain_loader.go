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

// chainLoader consults a list of Loaders in order, later loaders overriding values from earlier ones.
type chainLoader struct {
	loaders []Loader
}

// NewChainLoader returns a Loader which merges the configuration and credentials found by each of the provided
// loaders, first to last.
func NewChainLoader(chain []Loader) *chainLoader {
	return &chainLoader{loaders: chain}
}

// Config merges the profile settings from every loader in the chain using AwsConfig.MergeIn().  A loader which
// fails is skipped, so this method never returns an error.
func (l *chainLoader) Config(profile string, sources ...interface{}) (*AwsConfig, error) {
	c := new(AwsConfig)

	for i, ldr := range l.loaders {
		cf, err := ldr.Config(profile, sources...)
		if err != nil {
			logger.Debugf("loader %d: no configuration for profile '%s': %v", i, profile, err)
			continue
		}

		if cf == nil {
			continue
		}

		c.MergeIn(cf)
		if len(cf.ProfileName) > 0 {
			c.ProfileName = cf.ProfileName
		}
	}

	return c, nil
}

// Credentials returns the long-term key set from the last loader in the chain supplying a complete one.  A set
// with only one of the access key and secret key is ignored with a warning, it can not sign a request and must
// not hide a complete set found earlier in the chain.  A loader which fails is skipped, so this method never
// returns an error.
func (l *chainLoader) Credentials(profile string, sources ...interface{}) (*AwsCredentials, error) {
	c := new(AwsCredentials)

	for i, ldr := range l.loaders {
		cr, err := ldr.Credentials(profile, sources...)
		if err != nil {
			logger.Debugf("loader %d: no credentials for profile '%s': %v", i, profile, err)
			continue
		}

		if cr == nil || (len(cr.AccessKeyId) < 1 && len(cr.SecretAccessKey) < 1) {
			continue
		}

		if len(cr.AccessKeyId) < 1 || len(cr.SecretAccessKey) < 1 {
			logger.Warningf("ignoring incomplete access key set for profile '%s'", profile)
			continue
		}

		logger.Debugf("loader %d: found access key %s for profile '%s'", i, cr.AccessKeyId, profile)
		c.MergeIn(cr)
	}

	return c, nil
}
