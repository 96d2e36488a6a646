package ledger

// meanAmount divides every amount by the count before adding it, so no
// partial sum grows past the magnitude of the result even for amounts near
// math.MaxFloat64.
func meanAmount(txs []Transaction) (float64, error) {
	if len(txs) == 0 {
		return 0, errEmptyLedger
	}

	n := float64(len(txs))
	total := 0.0
	for _, tx := range txs {
		total += tx.Amount / n
	}

	return total, nil
}
