package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUploadBase64ImageRejectsMalformedDataURI(t *testing.T) {
	cases := []string{
		"",
		"AAAA",     // no comma
		"foo,AAAA", // comma but no colon in the meta part
		"a,b,c",    // too many segments
	}
	for _, in := range cases {
		_, err := UploadBase64ImageToS3(in, "avatar")
		require.Error(t, err, "input %q", in)
	}
}
