package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func materials(statuses ...Status) []Material {
	out := make([]Material, len(statuses))
	for i, s := range statuses {
		out[i] = Material{ID: string(rune('a' + i)), Status: s}
	}
	return out
}

func TestParseStatus(t *testing.T) {
	cases := map[string]Status{
		"PENDENTE":   StatusPending,
		"pendente":   StatusPending,
		" Aprovado ": StatusApproved,
		"APPROVED":   StatusApproved,
		"reprovado":  StatusRejected,
		"REJECTED":   StatusRejected,
		"Reprovados": StatusRejected,
	}
	for in, want := range cases {
		got, err := ParseStatus(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseStatus("em análise")
	require.Error(t, err)
}

func TestStatusWireRoundTrip(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusApproved, StatusRejected} {
		got, err := ParseStatus(s.Wire())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
}

func TestAggregate(t *testing.T) {
	t.Run("no materials approves", func(t *testing.T) {
		status, settled := Aggregate(nil)
		assert.True(t, settled)
		assert.Equal(t, StatusApproved, status)
	})

	t.Run("all approved approves", func(t *testing.T) {
		status, settled := Aggregate(materials(StatusApproved, StatusApproved))
		assert.True(t, settled)
		assert.Equal(t, StatusApproved, status)
	})

	t.Run("any rejection rejects regardless of position", func(t *testing.T) {
		for _, ms := range [][]Material{
			materials(StatusRejected, StatusApproved, StatusApproved),
			materials(StatusApproved, StatusApproved, StatusRejected),
			materials(StatusRejected, StatusRejected),
		} {
			status, settled := Aggregate(ms)
			assert.True(t, settled)
			assert.Equal(t, StatusRejected, status)
		}
	})

	t.Run("pending keeps the project open", func(t *testing.T) {
		status, settled := Aggregate(materials(StatusRejected, StatusPending))
		assert.False(t, settled)
		assert.Equal(t, StatusPending, status)
	})
}

func TestFilterProjects(t *testing.T) {
	projects := []Project{
		{ID: "1", Name: "Residencial Aurora", Responsible: "Marta Lima"},
		{ID: "2", Name: "Galpão Norte", Responsible: "João Souza"},
		{ID: "3", Name: "Loja Centro", Responsible: "aurora engenharia"},
	}

	assert.Len(t, FilterProjects(projects, ""), 3)
	assert.Len(t, FilterProjects(projects, "   "), 3)

	got := FilterProjects(projects, "AURORA")
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "3", got[1].ID)

	got = FilterProjects(projects, "souza")
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)

	assert.Empty(t, FilterProjects(projects, "inexistente"))
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	page, pages := Paginate(items, 1, 2)
	assert.Equal(t, []int{1, 2}, page)
	assert.Equal(t, 3, pages)

	page, _ = Paginate(items, 3, 2)
	assert.Equal(t, []int{5}, page)

	page, _ = Paginate(items, 4, 2)
	assert.Empty(t, page)

	page, pages = Paginate([]int{}, 1, 10)
	assert.Empty(t, page)
	assert.Equal(t, 0, pages)

	page, pages = Paginate(items, math.MaxInt, 2)
	assert.Empty(t, page, "huge page numbers must not wrap around")
	assert.Equal(t, 3, pages)

	page, pages = Paginate(items, 1, math.MaxInt)
	assert.Equal(t, items, page)
	assert.Equal(t, 1, pages)
}

func TestProjectFindMaterial(t *testing.T) {
	p := Project{Environments: []Environment{
		{ID: "e1", Materials: materials(StatusPending)},
		{ID: "e2", Materials: materials(StatusPending, StatusRejected)},
	}}

	m := p.FindMaterial("e2", "b")
	require.NotNil(t, m)
	m.Status = StatusApproved
	assert.Equal(t, StatusApproved, p.Environments[1].Materials[1].Status)

	assert.Nil(t, p.FindMaterial("e1", "b"))
	assert.Len(t, p.AllMaterials(), 3)
}

func TestCanonicalItem(t *testing.T) {
	got, ok := CanonicalItem(" piso ")
	require.True(t, ok)
	assert.Equal(t, "Piso", got)

	_, ok = CanonicalItem("telhado verde")
	assert.False(t, ok)
}
