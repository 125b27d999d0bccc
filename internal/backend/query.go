package backend

import (
	"net/url"
	"strconv"
	"strings"
)

type params url.Values

func pageParams(p PageQuery) params {
	if p.PageNum < 1 {
		p.PageNum = 1
	}
	if p.PageSize < 1 || p.PageSize > 200 {
		p.PageSize = 10
	}
	v := params{}
	v.int("pageNum", int64(p.PageNum))
	v.int("pageSize", int64(p.PageSize))
	return v
}

func idQuery(id int64) url.Values {
	return url.Values{"id": []string{strconv.FormatInt(id, 10)}}
}

func (p params) str(k, v string) {
	if v = strings.TrimSpace(v); v != "" {
		url.Values(p).Set(k, v)
	}
}

func (p params) int(k string, v int64) {
	url.Values(p).Set(k, strconv.FormatInt(v, 10))
}

// nonZero skips 0, which the backend reads as "no filter" for ids.
func (p params) nonZero(k string, v int64) {
	if v != 0 {
		p.int(k, v)
	}
}

func (p params) optInt(k string, v *int) {
	if v != nil {
		p.int(k, int64(*v))
	}
}

func (p params) optBool(k string, v *bool) {
	if v != nil {
		url.Values(p).Set(k, strconv.FormatBool(*v))
	}
}

func (p params) values() url.Values { return url.Values(p) }
