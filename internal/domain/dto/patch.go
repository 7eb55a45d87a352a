package dto

import (
	"slices"
	"time"
)

// Changes lists the json names of fields whose stored value was changed by a patch.
type Changes []string

func (c Changes) Has(field string) bool {
	return slices.Contains(c, field)
}

func (c Changes) Empty() bool {
	return len(c) == 0
}

func set[T comparable](changes *Changes, field string, dst *T, src *T) {
	if src == nil {
		return
	}
	if *dst != *src {
		*changes = append(*changes, field)
	}
	*dst = *src
}

func setOptional[T comparable](changes *Changes, field string, dst **T, src *T) {
	if src == nil {
		return
	}
	if *dst == nil || **dst != *src {
		*changes = append(*changes, field)
	}
	v := *src
	*dst = &v
}

func setTime(changes *Changes, field string, dst *time.Time, src *time.Time) {
	if src == nil {
		return
	}
	if !dst.Equal(*src) {
		*changes = append(*changes, field)
	}
	*dst = *src
}

func setOptionalTime(changes *Changes, field string, dst **time.Time, src *time.Time) {
	if src == nil {
		return
	}
	if *dst == nil || !(*dst).Equal(*src) {
		*changes = append(*changes, field)
	}
	v := *src
	*dst = &v
}
