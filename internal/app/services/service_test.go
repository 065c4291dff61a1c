package services

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/campushub/portal/internal/app/repositories"
	"github.com/campushub/portal/internal/store"
)

// A helper function to build the repositories over a throwaway store.
func newTestRepos(t *testing.T) *repositories.Repositories {
	t.Helper()
	st := store.New(t.TempDir(), store.DefaultTables(), zerolog.Nop())
	require.NoError(t, st.Initialize())
	return repositories.NewRepositories(st)
}
