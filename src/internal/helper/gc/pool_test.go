// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package gc

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockBuffer satisfies Buffer without coming from bytebufferpool.
type mockBuffer struct{ bytes.Buffer }

func TestBufferOperations(t *testing.T) {
	tests := []struct {
		name  string
		setup func(buf Buffer)
		want  string
	}{
		{
			name:  "Write byte slice",
			setup: func(buf Buffer) { buf.Write([]byte("hello")) },
			want:  "hello",
		},
		{
			name:  "WriteString",
			setup: func(buf Buffer) { buf.WriteString(`{"jsonrpc":"2.0"}`) },
			want:  `{"jsonrpc":"2.0"}`,
		},
		{
			name: "Multiple operations",
			setup: func(buf Buffer) {
				buf.WriteString("[1")
				buf.WriteByte(',')
				buf.Write([]byte("2]"))
			},
			want: "[1,2]",
		},
		{
			name:  "ReadFrom",
			setup: func(buf Buffer) { buf.ReadFrom(strings.NewReader("from reader")) },
			want:  "from reader",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := Default.Get()
			defer func() {
				buf.Reset()
				Default.Put(buf)
			}()

			tt.setup(buf)
			assert.Equal(t, tt.want, buf.String())
			assert.Equal(t, []byte(tt.want), buf.Bytes())
			assert.Equal(t, len(tt.want), buf.Len())
		})
	}
}

func TestBufferWriteTo(t *testing.T) {
	buf := Default.Get()
	defer func() {
		buf.Reset()
		Default.Put(buf)
	}()

	buf.WriteString("payload")
	var out bytes.Buffer
	n, err := buf.WriteTo(&out)
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
	assert.Equal(t, "payload", out.String())
}

func TestPoolResetBeforeReuse(t *testing.T) {
	p := New()
	buf := p.Get()
	buf.WriteString("stale")
	buf.Reset()
	p.Put(buf)

	again := p.Get()
	assert.Equal(t, 0, again.Len())
}

func TestPoolPutForeignBuffer(t *testing.T) {
	p := New()
	assert.NotPanics(t, func() { p.Put(&mockBuffer{}) })
}

func TestPoolConcurrentUse(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			buf := Default.Get()
			buf.WriteString("concurrent")
			assert.Equal(t, "concurrent", buf.String())
			buf.Reset()
			Default.Put(buf)
		}()
	}
	wg.Wait()
}
