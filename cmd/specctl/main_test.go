package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/Fernandolass/frontend-lab-eng-sub000/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestLoginListAndApprove(t *testing.T) {
	var projectDecisions []string
	material := map[string]any{"id": "m1", "ambiente": "e1", "item": "Piso", "descricao": "porcelanato", "status": "PENDENTE"}
	project := func(status string) map[string]any {
		return map[string]any{
			"id": "p1", "nome": "Residencial Aurora", "tipo": "RESIDENCIAL", "responsavel": "Ana",
			"data_entrega": "2026-12-01", "status": status,
			"ambientes": []any{map[string]any{"id": "e1", "nome": "Sala", "categoria": "UNIDADE_PRIVATIVA", "materiais": []any{material}}},
		}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/token/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]string{"access": "a1", "refresh": "r1"})
	})
	mux.HandleFunc("/api/projetos/", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer a1", r.Header.Get("Authorization"))
		assert.Equal(t, "PENDENTE", r.URL.Query().Get("status"))
		writeJSON(w, map[string]any{"count": 1, "next": nil, "previous": nil, "results": []any{project("PENDENTE")}})
	})
	mux.HandleFunc("/api/projetos/p1/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, project("PENDENTE"))
	})
	mux.HandleFunc("/api/projetos/p1/aprovar/", func(w http.ResponseWriter, r *http.Request) {
		projectDecisions = append(projectDecisions, "aprovar")
		writeJSON(w, project("APROVADO"))
	})
	mux.HandleFunc("/api/materiais/m1/aprovar/", func(w http.ResponseWriter, r *http.Request) {
		approved := map[string]any{}
		for k, v := range material {
			approved[k] = v
		}
		approved["status"] = "APROVADO"
		writeJSON(w, approved)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	tokenFile := filepath.Join(t.TempDir(), "tokens.json")
	common := []string{"--api-url", srv.URL, "--token-file", tokenFile}

	out, err := run(t, append([]string{"login", "--email", "ana@obra.com", "--password", "x"}, common...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "logged in as ana@obra.com")
	_, err = os.Stat(tokenFile)
	require.NoError(t, err)

	out, err = run(t, append([]string{"projects", "list", "--status", "pendente"}, common...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Residencial Aurora")
	assert.Contains(t, out, "01/12/2026")
	assert.Contains(t, out, "page 1/1, 1 projects")

	out, err = run(t, append([]string{"materials", "approve", "p1", "m1"}, common...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "material m1 is now APROVADO")
	assert.Contains(t, out, "project is now APROVADO")
	assert.Equal(t, []string{"aprovar"}, projectDecisions)

	_, err = run(t, append([]string{"materials", "approve", "p1", "m9"}, common...)...)
	assert.Error(t, err)
}

func TestReadPlan(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aurora.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
nome: Residencial Aurora
tipo: residencial
responsavel: Ana
data_entrega: "2026-12-01"
ambientes:
  - nome: Sala
    categoria: unidade_privativa
    materiais:
      - item: Piso
        descricao: Porcelanato 60x60
      - item: Teto
        descricao: Gesso
  - nome: Hall
    categoria: AREA_COMUM
`), 0o600))

	plan, err := readPlan(path)
	require.NoError(t, err)
	assert.Equal(t, "Residencial Aurora", plan.Project.Name)
	assert.Equal(t, domain.ProjectResidential, plan.Project.Type)
	assert.Equal(t, "2026-12-01", plan.Project.DeliveryOn)
	require.Len(t, plan.Environments, 2)
	assert.Equal(t, domain.CategoryPrivateUnit, plan.Environments[0].Category)
	require.Len(t, plan.Environments[0].Selections, 2)
	assert.Equal(t, "Porcelanato 60x60", plan.Environments[0].Selections[0].Description)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("nome: X\ntipo: castelo\nresponsavel: Ana\ndata_entrega: \"2026-12-01\"\n"), 0o600))
	_, err = readPlan(bad)
	assert.Error(t, err)
}

func TestSplitAssignment(t *testing.T) {
	id, value, err := splitAssignment("12=porcelanato = 60x60")
	require.NoError(t, err)
	assert.Equal(t, "12", id)
	assert.Equal(t, "porcelanato = 60x60", value)

	_, _, err = splitAssignment("sem-igual")
	assert.Error(t, err)
}

func TestParseStatusFlag(t *testing.T) {
	st, err := parseStatusFlag("all")
	require.NoError(t, err)
	assert.Nil(t, st)

	st, err = parseStatusFlag("reprovado")
	require.NoError(t, err)
	require.NotNil(t, st)
	assert.Equal(t, domain.StatusRejected, *st)

	_, err = parseStatusFlag("talvez")
	assert.Error(t, err)
}
