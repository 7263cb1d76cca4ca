package scripts

import (
	"fmt"

	"github.com/samber/lo"
	"go.starlark.net/starlark"
)

func toList(values []int64) *starlark.List {
	return starlark.NewList(lo.Map(values, func(v int64, _ int) starlark.Value {
		return starlark.MakeInt64(v)
	}))
}

func toInts(fnName string, iterable starlark.Iterable) ([]int64, error) {
	iter := iterable.Iterate()
	defer iter.Done()
	var ret []int64
	var elem starlark.Value
	for iter.Next(&elem) {
		i, ok := elem.(starlark.Int)
		if !ok {
			return nil, fmt.Errorf("%s: want int, got %s", fnName, elem.Type())
		}
		v, ok := i.Int64()
		if !ok {
			return nil, fmt.Errorf("%s: %s out of int64 range", fnName, i)
		}
		ret = append(ret, v)
	}
	return ret, nil
}
