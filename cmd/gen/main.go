// Command gen writes typed GORM query helpers for the cafe tables.
package main

import (
	"cafemap/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	g := gen.NewGenerator(gen.Config{
		OutPath:       "./internal/infra/persistence/postgres/query",
		Mode:          gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable: false,
	})

	g.ApplyBasic(
		model.CafeModel{},
		model.ReviewModel{},
		model.SubmitterContactModel{},
	)

	g.Execute()
}
