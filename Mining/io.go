package Mining

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/XxHardcoreGamerxX/University/Sets"
)

// ReadTransactions reads one transaction per line, items separated by tabs.
// Surrounding white space of a line is ignored, as are empty items and blank
// lines.
func ReadTransactions(r io.Reader) ([]Transaction, error) {
	var txs []Transaction
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		var tx Transaction
		for _, it := range strings.Split(line, "\t") {
			if it = strings.TrimSpace(it); it != "" {
				tx.Put(it)
			}
		}
		txs = append(txs, tx)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read transactions: %w", err)
	}
	return txs, nil
}

// WriteRules writes one rule per line:
// {antecedent items}\t{consequent items}\tsupport\tconfidence
// with both percentages rounded to two decimals.
func WriteRules(w io.Writer, rules []Rule) error {
	bw := bufio.NewWriter(w)
	for _, r := range rules {
		if _, err := fmt.Fprintf(bw, "%v\t%v\t%.2f\t%.2f\n", r.Antecedent, r.Consequent, r.Support, r.Confidence); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Transactions builds transactions from item lists, mostly for tests and
// callers that already hold the data in memory.
func Transactions(lists ...[]string) []Transaction {
	txs := make([]Transaction, len(lists))
	for i, l := range lists {
		txs[i] = Sets.NewSortedSet(l...)
	}
	return txs
}
