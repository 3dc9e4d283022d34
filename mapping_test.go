package confyg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/confyg"
	"github.com/agentstation/confyg/pkg/errors"
)

func TestMappingTableValidate(t *testing.T) {
	valid := confyg.MappingTable{
		{Document: "ml_config", Sections: []string{"model", "preprocessing"}},
		{Document: "io_config", Sections: []string{"paths"}},
	}
	assert.NoError(t, valid.Validate())

	conflicting := confyg.MappingTable{
		{Document: "ml_config", Sections: []string{"model"}},
		{Document: "io_config", Sections: []string{"model"}},
	}
	err := conflicting.Validate()
	require.Error(t, err)
	assert.True(t, errors.IsOwnershipConflict(err))
}

func TestMappingTableOwner(t *testing.T) {
	m := confyg.MappingTable{
		{Document: "ml_config", Sections: []string{"model", "preprocessing"}},
	}

	owner, ok, err := m.Owner("model")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "ml_config", owner)

	_, ok, err = m.Owner("unmapped")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMappingTableOwnerConflict(t *testing.T) {
	m := confyg.MappingTable{
		{Document: "a", Sections: []string{"model"}},
		{Document: "b", Sections: []string{"model"}},
	}

	_, _, err := m.Owner("model")
	require.Error(t, err)
	assert.True(t, errors.IsOwnershipConflict(err))
}

func TestMappingTableSectionsFor(t *testing.T) {
	m := confyg.MappingTable{
		{Document: "ml_config", Sections: []string{"model", "preprocessing"}},
	}

	assert.Equal(t, []string{"model", "preprocessing"}, m.SectionsFor("ml_config"))
	assert.Nil(t, m.SectionsFor("other"))
	assert.Equal(t, []string{"ml_config"}, m.Documents())
}
