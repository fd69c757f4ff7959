package drivers

import (
	"context"
	"fmt"
	"io"

	"github.com/XxHardcoreGamerxX/University/Classify"
	"github.com/XxHardcoreGamerxX/University/Mining"
	"github.com/rs/zerolog"
)

// AprioriParams are in percent.
type AprioriParams struct {
	MinSupport    float64
	MinConfidence float64
}

// AssociationRules mines the transactions of in and writes every rule that
// meets p to out.
func AssociationRules(ctx context.Context, in io.Reader, out io.Writer, p AprioriParams, logger zerolog.Logger) error {
	txs, err := Mining.ReadTransactions(in)
	if err != nil {
		return err
	}
	if err = ctx.Err(); err != nil {
		return err
	}
	frequent, err := Mining.Apriori(txs, p.MinSupport)
	if err != nil {
		return err
	}
	logger.Debug().Int("transactions", len(txs)).Int("frequent", len(frequent)).Msg("mined")
	if err = ctx.Err(); err != nil {
		return err
	}
	rules := Mining.Rules(frequent, txs, p.MinConfidence)
	logger.Info().Int("rules", len(rules)).Msgf("min_support=%.2f min_confidence=%.2f", p.MinSupport, p.MinConfidence)
	return Mining.WriteRules(out, rules)
}

// Classification fits a tree to the train table and writes test with a
// predicted column to out.
func Classification(ctx context.Context, train, test io.Reader, out io.Writer, dt *Classify.DecisionTree, logger zerolog.Logger) error {
	tr, err := Classify.ReadTable(train)
	if err != nil {
		return fmt.Errorf("train: %w", err)
	}
	te, err := Classify.ReadTable(test)
	if err != nil {
		return fmt.Errorf("test: %w", err)
	}
	if err = dt.FitTable(tr); err != nil {
		return fmt.Errorf("train: %w", err)
	}
	logger.Debug().Int("samples", len(tr.Rows)).Int("depth", dt.Depth()).Msg("fitted")
	if err = ctx.Err(); err != nil {
		return err
	}
	preds, err := dt.PredictTable(te)
	if err != nil {
		return fmt.Errorf("test: %w", err)
	}
	logger.Info().Int("predictions", len(preds)).Msg("classified")
	return Classify.WritePredictions(out, te, preds)
}
