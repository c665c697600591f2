package main

import (
	"tienda/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.ClientModel{},
		model.ProductModel{},
		model.TipoModel{},
		model.PurchaseModel{},
		model.PasswordResetModel{},
		model.RefreshTokenModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
