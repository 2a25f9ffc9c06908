package main

import (
	"context"
	"flag"
	"log"

	"recipebox/cmd/config"
	migration "recipebox/cmd/database/migrate"
	"recipebox/internal/utils"
	"recipebox/pkg/jwt"
	"recipebox/pkg/user"
)

func main() {
	createSuperuser := flag.Bool("create-superuser", false, "create a superuser account and exit")
	superuserEmail := flag.String("email", "", "superuser email (with -create-superuser)")
	superuserPassword := flag.String("password", "", "superuser password (with -create-superuser)")
	flag.Parse()

	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	if *createSuperuser {
		userService := user.NewUserService(user.NewUserRepository(db), jwt.NewJWTService())
		res, err := userService.RegisterSuperuser(context.Background(), *superuserEmail, *superuserPassword)
		if err != nil {
			log.Fatalf("failed to create superuser: %v", err)
		}
		log.Printf("superuser %s created (id %d)", res.Email, res.ID)
		return
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to build app: %v", err)
	}

	port := utils.GetConfig("APP_PORT")
	if port == "" {
		port = "8080"
	}
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
