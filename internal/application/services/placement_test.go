package services

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlanPlacement(t *testing.T) {
	tests := []struct {
		name     string
		route    string
		typeSeg  string
		tempPath string
		tempName string
		wantDir  string
		wantPath string
	}{
		{
			name:     "temp at storage root",
			route:    "products",
			typeSeg:  "images",
			tempPath: "/srv/uploads/abc.png",
			tempName: "abc.png",
			wantDir:  "/srv/uploads/products/images",
			wantPath: "/srv/uploads/products/images/abc.png",
		},
		{
			name:     "windows style separators normalized",
			route:    "products",
			typeSeg:  "images",
			tempPath: `C:\srv\uploads\abc.png`,
			tempName: "abc.png",
			wantDir:  "C:/srv/uploads/products/images",
			wantPath: "C:/srv/uploads/products/images/abc.png",
		},
		{
			name:     "leaf name appearing mid path is untouched",
			route:    "r",
			typeSeg:  "t",
			tempPath: "/data/abc/abc",
			tempName: "abc",
			wantDir:  "/data/abc/r/t",
			wantPath: "/data/abc/r/t/abc",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			p := planPlacement(tt.route, tt.typeSeg, tt.tempPath, tt.tempName)
			require.Equal(t, tt.wantDir, p.dir)
			require.Equal(t, tt.wantPath, p.path)
		})
	}
}
