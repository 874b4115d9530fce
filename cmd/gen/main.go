package main

import (
	"fintwin/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	g.ApplyBasic(model.ProfileModel{})

	g.Execute()
}
