// Command clean-db drops every application table after an interactive
// confirmation. Intended for development databases only.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"jobsta-backend/internal/database"
	"jobsta-backend/internal/model"
)

func main() {
	db, err := database.GetMainDB()
	if err != nil {
		log.Fatal("failed to connect to database: ", err)
	}

	fmt.Print("This drops ALL tables and their data. Type 'yes' to continue: ")
	reader := bufio.NewReader(os.Stdin)
	answer, _ := reader.ReadString('\n')
	if strings.TrimSpace(answer) != "yes" {
		fmt.Println("Aborted.")
		return
	}

	// Drop in dependency order so foreign keys do not block.
	tables := []interface{}{
		&model.Notification{},
		&model.JobInterest{},
		&model.Application{},
		&model.GroupMember{},
		&model.Group{},
		&model.Job{},
		&model.User{},
	}
	if err := db.Migrator().DropTable(tables...); err != nil {
		log.Fatal("failed to drop tables: ", err)
	}

	fmt.Println("All tables dropped.")
}
