// Command review is the review-worker CLI (spec §6): a JSON-lines
// stdin/stdout loop, grounded on the teacher's bufio.Scanner-driven UCI
// Run() loop in internal/uci/uci.go, repurposed from UCI text commands to
// one JSON request-per-line in, one JSON response-per-line out.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/ef81sp/holorenju/internal/review"
)

var cpuprofile = flag.String("cpuprofile", "", "unused placeholder kept for parity with the teacher's flag set")

func main() {
	flag.Parse()
	log.SetFlags(log.Lshortfile)
	if *cpuprofile != "" {
		log.Printf("cpuprofile not implemented in the review worker")
	}

	run(os.Stdin, os.Stdout)
}

func run(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	writer := bufio.NewWriter(out)
	defer writer.Flush()

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var req review.Request
		if err := json.Unmarshal([]byte(line), &req); err != nil {
			log.Printf("invalid request: %v", err)
			fmt.Fprintf(writer, "%s\n", mustMarshal(review.Response{}))
			writer.Flush()
			continue
		}

		resp := review.Evaluate(req)
		fmt.Fprintf(writer, "%s\n", mustMarshal(resp))
		writer.Flush()
	}

	if err := scanner.Err(); err != nil {
		log.Printf("stdin read error: %v", err)
	}
}

func mustMarshal(resp review.Response) []byte {
	data, err := json.Marshal(resp)
	if err != nil {
		log.Printf("marshal response: %v", err)
		return []byte("{}")
	}
	return data
}
