package template

import (
	"errors"

	"github.com/flosch/pongo2/v6"
	"github.com/vybenetwork/vybebot/util"
)

// formatTime filter
var _ = func() interface{} {
	pongo2.RegisterFilter("formatTime", func(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		return pongo2.AsValue(util.FormatTime(in.Interface())), nil
	})
	return nil
}()

// formatTimeFull filter, with seconds
var _ = func() interface{} {
	pongo2.RegisterFilter("formatTimeFull", func(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		return pongo2.AsValue(util.FormatTimeFull(in.Interface())), nil
	})
	return nil
}()

// formatDate filter, date only
var _ = func() interface{} {
	pongo2.RegisterFilter("formatDate", func(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		return pongo2.AsValue(util.FormatDate(in.Interface())), nil
	})
	return nil
}()

// formatNumber filter
var _ = func() interface{} {
	pongo2.RegisterFilter("formatNumber", func(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		return pongo2.AsValue(util.FormatNumber(in.Interface())), nil
	})
	return nil
}()

var _ = func() interface{} {
	pongo2.RegisterFilter("formatPer", func(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		return pongo2.AsValue(util.FormatPercentage(in.Interface())), nil
	})
	return nil
}()

var _ = func() interface{} {
	pongo2.RegisterFilter("formatChg", func(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		return pongo2.AsValue(util.FormatChange(in.Interface())), nil
	})
	return nil
}()

// comma filter for whole counts
var _ = func() interface{} {
	pongo2.RegisterFilter("comma", func(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		return pongo2.AsValue(util.FormatComma(in.Interface())), nil
	})
	return nil
}()

// money filter: thousands separators with two decimals
var _ = func() interface{} {
	pongo2.RegisterFilter("money", func(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		return pongo2.AsValue(util.FormatMoney(in.Interface())), nil
	})
	return nil
}()

// fixed filter: fixed decimal places, default 2
var _ = func() interface{} {
	pongo2.RegisterFilter("fixed", func(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		places := 2
		if param != nil && !param.IsNil() {
			places = param.Integer()
		}
		return pongo2.AsValue(util.FormatFixed(in.Interface(), places)), nil
	})
	return nil
}()

var _ = func() interface{} {
	pongo2.RegisterFilter("shortAddr", func(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		return pongo2.AsValue(util.ShortAddress(in.String())), nil
	})
	return nil
}()

var _ = func() interface{} {
	pongo2.RegisterFilter("numEmoji", func(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		return pongo2.AsValue(util.NumberEmoji(in.Integer())), nil
	})
	return nil
}()

var ErrRander = errors.New("❌ Something went wrong. Please try again.")
