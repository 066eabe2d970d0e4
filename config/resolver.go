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

import "github.com/mmmorris1975/aws-mfa-ls/shared"

type resolver struct {
	loader     Loader
	config     *AwsConfig
	creds      *AwsCredentials
	defConfig  *AwsConfig
	defCreds   *AwsCredentials
	resolveSrc bool
}

// NewResolver configures a Resolver using the provided loader. If the resolveSrc argument is true, then any source
// profile configuration is added to the overall configuration before applying profile-specific configuration.  This
// provides a way to manage common configuration in a more DRY way.
func NewResolver(loader Loader, resolveSrc bool) *resolver {
	return &resolver{
		loader:     loader,
		defConfig:  new(AwsConfig),
		defCreds:   new(AwsCredentials),
		resolveSrc: resolveSrc,
	}
}

// WithLogger sets the logger used by the package.
func (r *resolver) WithLogger(l shared.Logger) *resolver {
	logger = shared.LoggerOrDefault(l) // package-level logger
	return r
}

// WithDefaultConfig is a fluent method for setting an initial/default configuration object, which will be used as the
// base configuration for any calls to Config().
func (r *resolver) WithDefaultConfig(config *AwsConfig) *resolver {
	if config != nil {
		r.defConfig = config
	}
	return r
}

// Config is the implementation of the Resolver interface to build a coherent AwsConfig object.
func (r *resolver) Config(profile string) (*AwsConfig, error) {
	c, err := r.loader.Config(profile)
	if err != nil {
		return nil, err
	}

	r.config = new(AwsConfig)
	r.config.MergeIn(r.defConfig)

	if r.resolveSrc && c.sourceProfile != nil {
		r.config.MergeIn(c.sourceProfile)
	}
	r.config.MergeIn(c)

	r.config.ProfileName = profile
	if len(profile) < 1 {
		r.config.ProfileName = DefaultProfile
	}

	return r.config, nil
}

// Credentials is the implementation of the Resolver interface to build a coherent AwsCredentials object.
func (r *resolver) Credentials(profile string) (*AwsCredentials, error) {
	c, err := r.loader.Credentials(profile)
	if err != nil {
		return nil, err
	}

	r.creds = new(AwsCredentials)
	r.creds.MergeIn(r.defCreds, c)

	return r.creds, nil
}
