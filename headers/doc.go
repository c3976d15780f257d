// SPDX-License-Identifier: MIT
// Package: seedmock/headers
//
// Package headers generates HTTP header sets from a fixed schema.
//
// The core is the constrained collector: it draws header names uniformly from
// the schema entries matching a direction, an optional group and an optional
// pool, rejecting draws that would repeat a singular header (or any header
// when NoMulti is set). The loop is capped at size*10 attempts, so a
// configuration that cannot be satisfied fails with ErrUnsatisfiable instead
// of spinning forever.
//
// Every draw goes through one shared *mersenne.Source, so a Generator seeded
// with the same value produces the same header set for the same calls.
//
//	gen := headers.New(src, locale.En())
//	set, err := gen.Headers(headers.Response, headers.HeadersInit{Group: headers.GroupCaching, Length: 3})
//	if err != nil {
//		return err
//	}
//	fmt.Println(set)
package headers
