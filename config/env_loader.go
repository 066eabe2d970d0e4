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
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// DefaultEnvLoader creates a default EnvLoader type to read configuration and credentials from environment variables.
var DefaultEnvLoader = new(envLoader)

type envLoader bool

// Config is the implementation of the Loader interface.  The profile and sources arguments are ignored, and the value
// is returned via delegation to the EnvConfig() method.
func (l *envLoader) Config(string, ...interface{}) (*AwsConfig, error) {
	return l.EnvConfig()
}

// Credentials is the implementation of the Loader interface.  The profile and sources arguments are ignored, and the value
// is returned via delegation to the EnvCredentials() method.
func (l *envLoader) Credentials(string, ...interface{}) (*AwsCredentials, error) {
	return l.EnvCredentials()
}

// EnvConfig loads fields in the AwsConfig type which support environment variables.
func (l *envLoader) EnvConfig() (*AwsConfig, error) {
	c := new(AwsConfig)
	if err := resolveEnv(c); err != nil {
		return nil, err
	}
	return c, nil
}

// EnvCredentials loads the long-term access keys from the standard AWS environment variables.
func (l *envLoader) EnvCredentials() (*AwsCredentials, error) {
	c := new(AwsCredentials)
	if err := resolveEnv(c); err != nil {
		return nil, err
	}
	return c, nil
}

func resolveEnv(t interface{}) error {
	tv := reflect.ValueOf(t)
	if tv.Kind() != reflect.Ptr {
		return errors.New("not a pointer")
	}
	tt := tv.Elem().Type()

	for i := 0; i < tt.NumField(); i++ {
		ft := tt.Field(i)
		if envTag, ok := ft.Tag.Lookup("env"); ok {
			val := getEnvVar(envTag)
			if err := setVal(tv.Elem().Field(i), val); err != nil {
				return fmt.Errorf("%s: %w", envTag, err)
			}
		}
	}
	return nil
}

func getEnvVar(tag string) string {
	// loop through tag value of potential env vars to use, return the 1st one which is set
	for _, envVar := range strings.Split(tag, `,`) {
		if envVal, ok := os.LookupEnv(envVar); ok && len(envVal) > 0 {
			return envVal
		}
	}
	return ""
}

func setVal(field reflect.Value, value string) error {
	switch field.Type().Kind() {
	case reflect.String:
		field.SetString(value)
	case reflect.Int64:
		i := int64(0)
		if len(value) > 0 {
			var err error
			// could be an actual Int64, or an alias ... like time.Duration
			i, err = strconv.ParseInt(value, 0, 64)
			if err != nil {
				d, err := time.ParseDuration(value)
				if err != nil {
					return err
				}
				i = int64(d)
			}
		}
		field.SetInt(i)
	default:
		return fmt.Errorf("unknown type: %s", field.Type().Kind().String())
	}
	return nil
}
