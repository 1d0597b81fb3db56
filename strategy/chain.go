package strategy

import "hydrator/fields"

// Chain runs strategies in order on extraction and in reverse order on hydration.
type Chain []Strategy

// NewChain builds a chain, dropping nil entries.
func NewChain(strategies ...Strategy) Chain {
	chain := make(Chain, 0, len(strategies))
	for _, s := range strategies {
		if s != nil {
			chain = append(chain, s)
		}
	}

	return chain
}

func (c Chain) Extract(value any, object any) (any, error) {
	var err error
	for _, s := range c {
		value, err = s.Extract(value, object)
		if err != nil {
			return nil, err
		}
	}

	return value, nil
}

func (c Chain) Hydrate(value any, data *fields.Mapping) (any, error) {
	var err error
	for i := len(c) - 1; i >= 0; i-- {
		value, err = c[i].Hydrate(value, data)
		if err != nil {
			return nil, err
		}
	}

	return value, nil
}
