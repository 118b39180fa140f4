// Command admin-apikey prints a freshly generated admin API key, suitable for
// the ADMIN_API_KEY environment variable.
package main

import (
	"fmt"

	"github.com/google/uuid"
)

func main() {
	fmt.Printf("admin-api-key: %s\n", uuid.NewString())
}
