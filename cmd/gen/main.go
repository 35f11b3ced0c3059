package main

import (
	"flag"

	"captions/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gen"
)

// ProjectQuerier is rendered into typed query methods on the generated project DAO.
type ProjectQuerier interface {
	// SELECT * FROM @@table WHERE user_id = @userID ORDER BY last_update DESC
	ListByOwner(userID uuid.UUID) ([]*gen.T, error)
}

// UserQuerier is rendered into typed query methods on the generated user DAO.
type UserQuerier interface {
	// SELECT * FROM @@table WHERE external_id = @externalID LIMIT 1
	FindByExternalID(externalID string) (*gen.T, error)
}

func main() {
	outPath := flag.String("out", "./internal/infra/persistence/postgres/query", "output directory for generated query code")
	flag.Parse()

	newGenerator(*outPath).Execute()
}

func generatorConfig(outPath string) gen.Config {
	return gen.Config{
		OutPath:           outPath,
		Mode:              gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldWithIndexTag: true,
	}
}

func newGenerator(outPath string) *gen.Generator {
	g := gen.NewGenerator(generatorConfig(outPath))

	g.ApplyBasic(model.UserModel{}, model.ProjectModel{})
	g.ApplyInterface(func(UserQuerier) {}, model.UserModel{})
	g.ApplyInterface(func(ProjectQuerier) {}, model.ProjectModel{})

	return g
}
