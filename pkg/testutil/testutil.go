package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"google.golang.org/grpc/status"
)

// RequireEqualStatus asserts that two grpc Statuses are equal.
func RequireEqualStatus(t *testing.T, want, got error) {
	t.Helper()
	wantStatus := status.Convert(want)
	gotStatus := status.Convert(got)
	require.Equal(t, wantStatus.Code(), gotStatus.Code())
	require.Equal(t, wantStatus.Message(), gotStatus.Message())
}
