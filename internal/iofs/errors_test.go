package iofs

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnt2t/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrors(t *testing.T) {
	cause := errors.New("permission denied")
	tests := []struct {
		msg  string
		err  error
		code gn.ErrorCode
		arg  string
	}{
		{"create dir", CreateDirError("/test/dir", cause), errcode.CreateDirError, "/test/dir"},
		{"copy file", CopyFileError("/c.yaml", cause), errcode.CopyFileError, "/c.yaml"},
		{"read file", ReadFileError("/r.txt", cause), errcode.ReadFileError, "/r.txt"},
		{"write file", WriteFileError("/w.txt", cause), errcode.WriteFileError, "/w.txt"},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			gnErr, ok := v.err.(*gn.Error)
			require.True(t, ok, "Error should be of type *gn.Error")
			assert.Equal(t, v.code, gnErr.Code)
			assert.NotEmpty(t, gnErr.Msg)
			require.Len(t, gnErr.Vars, 1)
			assert.Equal(t, v.arg, gnErr.Vars[0])
			assert.ErrorIs(t, gnErr.Err, cause)
			assert.Contains(t, gnErr.Err.Error(), "TestErrors")
		})
	}
}
