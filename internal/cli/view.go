package cli

import (
	"fmt"
	"io"

	"github.com/muhammadhamzagova666/tourism-management-system/internal/domain"
)

func renderPackages(w io.Writer) {
	fmt.Fprint(w, "\nMENU\n\n")
	for _, p := range domain.Packages() {
		fmt.Fprintf(w, "%2d. %-18s - Rs %.0f\n", p.Code, p.Destination, p.UnitPrice)
	}
}
