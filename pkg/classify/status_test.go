/*
Copyright 2026.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/telekom/execution-report/pkg/record"
	"k8s.io/utils/ptr"
)

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		name string
		raw  *string
		want string
	}{
		{name: "missing is pending", raw: nil, want: StatusPending},
		{name: "pass", raw: ptr.To("pass"), want: StatusPass},
		{name: "PASS", raw: ptr.To("PASS"), want: StatusPass},
		{name: "fail", raw: ptr.To("fail"), want: StatusFail},
		{name: "fAIL", raw: ptr.To("fAIL"), want: StatusFail},
		{name: "unexpected value passes through", raw: ptr.To("skipped"), want: "Skipped"},
		{name: "multi word", raw: ptr.To("NOT RUN"), want: "Not run"},
		{name: "literal pending text is not missing", raw: ptr.To("pending"), want: "Pending"},
		{name: "empty string stays empty", raw: ptr.To(""), want: ""},
		{name: "unicode first letter", raw: ptr.To("échec"), want: "Échec"},
		{name: "digraph is title-cased", raw: ptr.To("ǆEMAL"), want: "ǅemal"},
		{name: "long s is not pass", raw: ptr.To("paſs"), want: "Paſs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeStatus(tt.raw))
		})
	}
}

func TestIsPassIsFail(t *testing.T) {
	assert.True(t, IsPass(ptr.To("Pass")))
	assert.True(t, IsPass(ptr.To("PASS")))
	assert.False(t, IsPass(ptr.To("passed")))
	assert.False(t, IsPass(nil))

	assert.True(t, IsFail(ptr.To("FAIL")))
	assert.False(t, IsFail(ptr.To("failed")))
	assert.False(t, IsFail(nil))

	// only ASCII case variants count
	assert.False(t, IsPass(ptr.To("paſs")))
	assert.False(t, IsPass(ptr.To("PAſS")))
	assert.False(t, IsFail(ptr.To("FAİL")))
	assert.False(t, IsPass(ptr.To(" pass")))
}

func TestDescribe(t *testing.T) {
	withActual := record.New(map[string]*string{"actual": ptr.To("Order placed")})
	assert.Equal(t, "Order placed", Describe(withActual))

	withoutActual := record.New(map[string]*string{"actual": nil})
	assert.Equal(t, DefaultDescription, Describe(withoutActual))

	noColumn := record.New(nil)
	assert.Equal(t, "Test case", Describe(noColumn))
}
