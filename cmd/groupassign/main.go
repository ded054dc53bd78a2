// groupassign randomly assigns identifiers (students, samples) to a set of
// groups, keeping group sizes balanced, and prints the result as an aligned
// table.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/carbocation/pfx"

	"github.com/strandlab/exprset/assign"
)

func main() {
	var idList, groupList string
	var perID int
	var seed int64

	flag.StringVar(&idList, "ids", "", "Comma-delimited identifiers, or a path to a file with one identifier per line")
	flag.StringVar(&groupList, "groups", "", "Comma-delimited group names")
	flag.IntVar(&perID, "per_id", 2, "Number of distinct groups assigned to each identifier")
	flag.Int64Var(&seed, "seed", 0, "Random seed. If 0, the current time is used.")
	flag.Parse()

	if idList == "" || groupList == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	ids, err := parseList(idList)
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}
	groups := strings.Split(groupList, ",")

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	assignments, counts, err := assign.Balanced(rand.New(rand.NewSource(seed)), ids, groups, perID)
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}

	fmt.Println("Identifiers assigned per group:")
	for _, g := range groups {
		fmt.Printf("  %s: %d\n", g, counts[g])
	}
	fmt.Println()

	header := make([]interface{}, 0, perID+1)
	header = append(header, "Identifier")
	for i := 1; i <= perID; i++ {
		header = append(header, fmt.Sprintf("Group %d", i))
	}
	rowFormat := "%-30s" + strings.Repeat(" %-20s", perID) + "\n"
	fmt.Printf(rowFormat, header...)

	for _, a := range assignments {
		row := make([]interface{}, 0, perID+1)
		row = append(row, a.ID)
		for _, g := range a.Groups {
			row = append(row, g)
		}
		fmt.Printf(rowFormat, row...)
	}
}

func parseList(input string) ([]string, error) {
	if _, err := os.Stat(input); err == nil {
		contents, err := os.ReadFile(input)
		if err != nil {
			return nil, err
		}

		var out []string
		for _, line := range strings.Split(string(contents), "\n") {
			if line = strings.TrimSpace(line); line != "" {
				out = append(out, line)
			}
		}
		return out, nil
	}

	return strings.Split(input, ","), nil
}
