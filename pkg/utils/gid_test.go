package utils_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"prodfeedback/pkg/utils"
)

func TestExtractLocalID(t *testing.T) {
	tests := []struct {
		name    string
		gid     string
		want    string
		wantErr bool
	}{
		{name: "shopify product gid", gid: "gid://shopify/Product/8123456789", want: "8123456789"},
		{name: "short namespace", gid: "ns/42", want: "42"},
		{name: "no separator", gid: "8123456789", wantErr: true},
		{name: "empty local id", gid: "gid://shopify/Product/", wantErr: true},
		{name: "empty input", gid: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := utils.ExtractLocalID(tt.gid)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
