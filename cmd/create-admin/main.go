// Command create-admin provisions an admin account with random credentials
// and prints them once. Meant for initial setup of a fresh deployment.
package main

import (
	"crypto/rand"
	"fmt"
	"log"
	"math/big"

	"jobsta-backend/internal/database"
	"jobsta-backend/internal/utilities"
)

const credentialCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func randomString(length int) string {
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(credentialCharset))))
		if err != nil {
			log.Fatal("failed to generate random credentials: ", err)
		}
		out[i] = credentialCharset[n.Int64()]
	}
	return string(out)
}

func main() {
	db, err := database.GetMainDB()
	if err != nil {
		log.Fatal("failed to connect to database: ", err)
	}

	username := "admin_" + randomString(8)
	password := randomString(24)

	utilities.CreateAdmin(password, username, db.DB)

	fmt.Println("Admin account created. Store these credentials now, they are not shown again.")
	fmt.Println("username:", username)
	fmt.Println("password:", password)
}
