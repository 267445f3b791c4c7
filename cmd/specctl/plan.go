package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/Fernandolass/frontend-lab-eng-sub000/client"
	"github.com/Fernandolass/frontend-lab-eng-sub000/domain"
	"github.com/Fernandolass/frontend-lab-eng-sub000/workflow"
	"github.com/spf13/viper"
)

// planFile is the on-disk layout of a project plan, using the API's field names
type planFile struct {
	Name         string `mapstructure:"nome"`
	Type         string `mapstructure:"tipo"`
	Responsible  string `mapstructure:"responsavel"`
	DeliveryOn   string `mapstructure:"data_entrega"`
	Description  string `mapstructure:"descricao"`
	GeneralNotes string `mapstructure:"observacoes_gerais"`
	Environments []struct {
		Name      string `mapstructure:"nome"`
		Category  string `mapstructure:"categoria"`
		Materials []struct {
			Item        string `mapstructure:"item"`
			Description string `mapstructure:"descricao"`
		} `mapstructure:"materiais"`
	} `mapstructure:"ambientes"`
}

// readPlan loads a YAML or JSON plan; the format follows the file extension
func readPlan(path string) (workflow.ProjectPlan, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return workflow.ProjectPlan{}, fmt.Errorf("read plan: %w", err)
	}
	var f planFile
	if err := v.Unmarshal(&f); err != nil {
		return workflow.ProjectPlan{}, fmt.Errorf("decode plan: %w", err)
	}

	delivery, err := time.Parse("2006-01-02", strings.TrimSpace(f.DeliveryOn))
	if err != nil {
		return workflow.ProjectPlan{}, fmt.Errorf("data_entrega must be YYYY-MM-DD: %w", err)
	}
	in := client.NewProjectInput(f.Name, domain.ProjectType(strings.ToUpper(f.Type)), f.Responsible, delivery)
	in.Description = f.Description
	in.GeneralNotes = f.GeneralNotes

	plan := workflow.ProjectPlan{Project: in}
	for _, env := range f.Environments {
		ep := workflow.EnvironmentPlan{
			Name:     env.Name,
			Category: domain.EnvironmentCategory(strings.ToUpper(env.Category)),
		}
		for _, m := range env.Materials {
			ep.Selections = append(ep.Selections, workflow.Selection{Item: m.Item, Description: m.Description})
		}
		plan.Environments = append(plan.Environments, ep)
	}
	return plan, plan.Validate()
}
