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
	"fmt"
	"github.com/mitchellh/go-homedir"
	"gopkg.in/ini.v1"
	"os"
	"path/filepath"
)

// DefaultIniLoader creates a default Loader type to gather configuration and credentials from ini-style data sources.
var DefaultIniLoader = new(iniLoader)

type iniLoader bool

// Config loads fields in the AwsConfig type which support ini-style configuration. The section name to load is specified
// with the profile argument.  If the profile argument is empty, the "default" section will be parsed and loaded. An
// optional variadic sources argument can be provided which can be any of the supported go-ini data source types.  If no
// sources are specified, the default AWS config file (~/.aws/config) is used, unless overridden with the AWS_CONFIG_FILE
// environment variable.
func (l *iniLoader) Config(profile string, sources ...interface{}) (*AwsConfig, error) {
	file, err := resolveConfigSources(sources...)
	if err != nil {
		return nil, err
	}

	c := new(AwsConfig)
	if len(profile) < 1 {
		profile = DefaultProfile
	} else {
		// unconditionally attempt to load default profile config
		_ = file.Section(DefaultProfile).MapTo(c)
	}

	s, err := lookupProfile(file, profile)
	if err != nil {
		return c, err
	}

	pc := new(AwsConfig)
	if err = s.MapTo(pc); err != nil {
		return c, err
	}
	c.MergeIn(pc)

	if len(c.SrcProfile) > 0 {
		src := new(AwsConfig)
		src.ProfileName = c.SrcProfile

		_ = file.Section(DefaultProfile).MapTo(src) // add defaults to source profile config

		sp, err := lookupProfile(file, c.SrcProfile)
		if err != nil {
			return nil, err
		}

		if err = sp.MapTo(src); err != nil {
			return nil, err
		}

		c.MergeIn(src, pc)
		c.sourceProfile = src
	}

	c.ProfileName = profile
	return c, nil
}

// Credentials loads the long-term access keys from ini-style credentials. The section name to load is specified with
// the profile argument.  If the profile argument is empty, the "default" section will be parsed and loaded. An optional
// variadic sources argument can be provided which can be any of the supported go-ini data source types.  If no sources
// are specified, the default AWS credentials file (~/.aws/credentials) is used, unless overridden with the
// AWS_SHARED_CREDENTIALS_FILE environment variable.
func (l *iniLoader) Credentials(profile string, sources ...interface{}) (*AwsCredentials, error) {
	file, err := resolveCredentialSources(sources...)
	if err != nil {
		return nil, err
	}

	if len(profile) < 1 {
		profile = DefaultProfile
	}

	s, err := file.GetSection(profile)
	if err != nil {
		return nil, err
	}

	c := new(AwsCredentials)
	if err = s.MapTo(c); err != nil {
		return nil, err
	}

	return c, nil
}

// SharedConfigFilename returns the location of the AWS config file, honoring the AWS_CONFIG_FILE environment variable.
func SharedConfigFilename() string {
	return sharedFilename("AWS_CONFIG_FILE", "config")
}

// SharedCredentialsFilename returns the location of the AWS credentials file, honoring the AWS_SHARED_CREDENTIALS_FILE
// environment variable.
func SharedCredentialsFilename() string {
	return sharedFilename("AWS_SHARED_CREDENTIALS_FILE", "credentials")
}

func sharedFilename(env, name string) string {
	if e, ok := os.LookupEnv(env); ok && len(e) > 0 {
		return e
	}

	home, err := homedir.Dir()
	if err != nil {
		logger.Debugf("unable to find home directory: %v", err)
		home = "."
	}
	return filepath.Join(home, ".aws", name)
}

func resolveConfigSources(sources ...interface{}) (*ini.File, error) {
	if len(sources) < 1 {
		src := SharedConfigFilename()
		logger.Debugf("using configuration source %s", src)
		sources = []interface{}{src}
	}
	return loadSources(sources)
}

func resolveCredentialSources(sources ...interface{}) (*ini.File, error) {
	if len(sources) < 1 {
		src := SharedCredentialsFilename()
		logger.Debugf("using credentials source %s", src)
		sources = []interface{}{src}
	}
	return loadSources(sources)
}

func loadSources(sources []interface{}) (*ini.File, error) {
	f := ini.Empty()

	for _, s := range sources {
		if err := f.Append(s); err != nil {
			return nil, err
		}
	}

	return f, nil
}

func lookupProfile(f *ini.File, profile string) (*ini.Section, error) {
	s, err := f.GetSection(profile)
	if err != nil {
		// try looking up 'profile name' before failing
		return f.GetSection(fmt.Sprintf("profile %s", profile))
	}
	return s, err
}
