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

package storage

import (
	"context"
	"fmt"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"strconv"
	"strings"
	"time"
)

// s3Mock serves the contents of a single bucket, split into pages of pageSize keys.
type s3Mock struct {
	s3Api
	bucket   string
	keys     []string
	pageSize int
	calls    int
	inputs   []*s3.ListObjectsV2Input
	// errAfter fails the call with err once this many calls have succeeded.
	errAfter int
	err      error
}

func (m *s3Mock) ListObjectsV2(_ context.Context, in *s3.ListObjectsV2Input, _ ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	m.calls++
	m.inputs = append(m.inputs, in)

	if m.err != nil && m.calls > m.errAfter {
		return nil, m.err
	}

	if aws.ToString(in.Bucket) != m.bucket {
		return nil, &types.NoSuchBucket{Message: aws.String("The specified bucket does not exist")}
	}

	size := m.pageSize
	if in.MaxKeys != nil {
		size = int(*in.MaxKeys)
	}
	if size < 1 {
		size = 1000
	}

	keys := make([]string, 0, len(m.keys))
	for _, k := range m.keys {
		if strings.HasPrefix(k, aws.ToString(in.Prefix)) {
			keys = append(keys, k)
		}
	}

	start := 0
	if in.ContinuationToken != nil {
		start, _ = strconv.Atoi(*in.ContinuationToken)
	}

	end := start + size
	if end > len(keys) {
		end = len(keys)
	}

	out := &s3.ListObjectsV2Output{
		Name:     in.Bucket,
		KeyCount: aws.Int32(int32(end - start)),
	}

	for i, k := range keys[start:end] {
		out.Contents = append(out.Contents, types.Object{
			Key:          aws.String(k),
			Size:         aws.Int64(int64(100 * (start + i + 1))),
			LastModified: aws.Time(time.Date(2024, 1, 1, 0, 0, start+i, 0, time.UTC)),
		})
	}

	if end < len(keys) {
		out.IsTruncated = aws.Bool(true)
		out.NextContinuationToken = aws.String(fmt.Sprint(end))
	} else {
		out.IsTruncated = aws.Bool(false)
	}
	return out, nil
}
