package siteforge_test

import (
	"testing"

	"github.com/fwojciec/siteforge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := siteforge.Errorf(siteforge.ENOTFOUND, "project %q not found", "test")

	assert.Equal(t, siteforge.ENOTFOUND, siteforge.ErrorCode(err))
	assert.Equal(t, "project \"test\" not found", siteforge.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, siteforge.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, siteforge.ErrorMessage(nil))
}

func TestBusinessFacts_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts normal name", func(t *testing.T) {
		t.Parallel()
		facts := siteforge.BusinessFacts{Name: "Joe's Plumbing"}
		require.NoError(t, facts.Validate())
	})

	t.Run("rejects short name after trim", func(t *testing.T) {
		t.Parallel()
		facts := siteforge.BusinessFacts{Name: "  a  "}
		err := facts.Validate()
		require.Error(t, err)
		assert.Equal(t, siteforge.EINVALID, siteforge.ErrorCode(err))
	})
}

func TestBusinessFacts_Merge(t *testing.T) {
	t.Parallel()

	user := siteforge.BusinessFacts{
		Name:  "Joe's Plumbing",
		Owner: "Joe Smith",
		Email: "joe@example.com",
	}
	ai := siteforge.BusinessFacts{
		Name:     "Unknown",
		Industry: "Plumbing",
		Owner:    "",
		Phone:    "(555) 123-4567",
	}

	merged := user.Merge(ai)

	assert.Equal(t, "Joe's Plumbing", merged.Name, "sentinel unknown must not overwrite")
	assert.Equal(t, "Joe Smith", merged.Owner, "empty extraction must not overwrite")
	assert.Equal(t, "Plumbing", merged.Industry)
	assert.Equal(t, "(555) 123-4567", merged.Phone)
	assert.Equal(t, "joe@example.com", merged.Email)
}

func TestProject_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		project siteforge.Project
		wantErr bool
	}{
		{
			name: "valid",
			project: siteforge.Project{
				Name:         "Acme Redesign",
				BusinessInfo: siteforge.BusinessFacts{Name: "Acme Co"},
			},
		},
		{
			name: "name too short",
			project: siteforge.Project{
				Name:         "ab",
				BusinessInfo: siteforge.BusinessFacts{Name: "Acme Co"},
			},
			wantErr: true,
		},
		{
			name: "missing business name",
			project: siteforge.Project{
				Name: "Acme Redesign",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.project.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, siteforge.EINVALID, siteforge.ErrorCode(err))
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidSiteID(t *testing.T) {
	t.Parallel()

	assert.True(t, siteforge.ValidSiteID("abc123DEF"))
	assert.False(t, siteforge.ValidSiteID(""))
	assert.False(t, siteforge.ValidSiteID("../etc/passwd"))
	assert.False(t, siteforge.ValidSiteID("abc-123"))
}

func TestConfigService_Update(t *testing.T) {
	t.Parallel()

	t.Run("rejects provider without credential", func(t *testing.T) {
		t.Parallel()

		svc := siteforge.NewConfigService(siteforge.DefaultConfig())
		provider := siteforge.ProviderOpenAI

		_, err := svc.Update(siteforge.ConfigUpdate{Provider: &provider})

		require.Error(t, err)
		assert.Equal(t, siteforge.EINVALID, siteforge.ErrorCode(err))
		assert.Equal(t, siteforge.ProviderGemini, svc.Get().Provider, "failed update must not apply")
	})

	t.Run("switches provider with credential", func(t *testing.T) {
		t.Parallel()

		svc := siteforge.NewConfigService(siteforge.DefaultConfig())
		provider := siteforge.ProviderOpenAI
		key := "sk-test"

		cfg, err := svc.Update(siteforge.ConfigUpdate{Provider: &provider, OpenAIAPIKey: &key})

		require.NoError(t, err)
		assert.Equal(t, siteforge.ProviderOpenAI, cfg.Provider)
		assert.Equal(t, siteforge.ProviderOpenAI, svc.Get().Provider)
	})

	t.Run("rejects unknown provider", func(t *testing.T) {
		t.Parallel()

		svc := siteforge.NewConfigService(siteforge.DefaultConfig())
		provider := siteforge.Provider("mystery")

		_, err := svc.Update(siteforge.ConfigUpdate{Provider: &provider})

		require.Error(t, err)
		assert.Equal(t, siteforge.EINVALID, siteforge.ErrorCode(err))
	})
}

func TestSanitize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "scriptalert(1)/script", siteforge.Sanitize("  <script>alert(1)</script>  "))
	assert.Equal(t, "Acme Co", siteforge.Sanitize("Acme Co"))
}
