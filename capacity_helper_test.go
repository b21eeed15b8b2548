package archecs_test

import "github.com/ashworth-labs/archecs"

// Sixty-five distinct component types, solely to exercise the 64-type
// registry ceiling (§7 CapacityExceeded) without hand-writing the same
// registration call sixty-five times inline at the call site.
type capType00 struct{}
type capType01 struct{}
type capType02 struct{}
type capType03 struct{}
type capType04 struct{}
type capType05 struct{}
type capType06 struct{}
type capType07 struct{}
type capType08 struct{}
type capType09 struct{}
type capType10 struct{}
type capType11 struct{}
type capType12 struct{}
type capType13 struct{}
type capType14 struct{}
type capType15 struct{}
type capType16 struct{}
type capType17 struct{}
type capType18 struct{}
type capType19 struct{}
type capType20 struct{}
type capType21 struct{}
type capType22 struct{}
type capType23 struct{}
type capType24 struct{}
type capType25 struct{}
type capType26 struct{}
type capType27 struct{}
type capType28 struct{}
type capType29 struct{}
type capType30 struct{}
type capType31 struct{}
type capType32 struct{}
type capType33 struct{}
type capType34 struct{}
type capType35 struct{}
type capType36 struct{}
type capType37 struct{}
type capType38 struct{}
type capType39 struct{}
type capType40 struct{}
type capType41 struct{}
type capType42 struct{}
type capType43 struct{}
type capType44 struct{}
type capType45 struct{}
type capType46 struct{}
type capType47 struct{}
type capType48 struct{}
type capType49 struct{}
type capType50 struct{}
type capType51 struct{}
type capType52 struct{}
type capType53 struct{}
type capType54 struct{}
type capType55 struct{}
type capType56 struct{}
type capType57 struct{}
type capType58 struct{}
type capType59 struct{}
type capType60 struct{}
type capType61 struct{}
type capType62 struct{}
type capType63 struct{}
type capType64 struct{} // the 65th distinct type, past the 64-type ceiling

func registerManyDistinctComponentTypes(w *archecs.World) {
	archecs.GetComponentID[capType00](w)
	archecs.GetComponentID[capType01](w)
	archecs.GetComponentID[capType02](w)
	archecs.GetComponentID[capType03](w)
	archecs.GetComponentID[capType04](w)
	archecs.GetComponentID[capType05](w)
	archecs.GetComponentID[capType06](w)
	archecs.GetComponentID[capType07](w)
	archecs.GetComponentID[capType08](w)
	archecs.GetComponentID[capType09](w)
	archecs.GetComponentID[capType10](w)
	archecs.GetComponentID[capType11](w)
	archecs.GetComponentID[capType12](w)
	archecs.GetComponentID[capType13](w)
	archecs.GetComponentID[capType14](w)
	archecs.GetComponentID[capType15](w)
	archecs.GetComponentID[capType16](w)
	archecs.GetComponentID[capType17](w)
	archecs.GetComponentID[capType18](w)
	archecs.GetComponentID[capType19](w)
	archecs.GetComponentID[capType20](w)
	archecs.GetComponentID[capType21](w)
	archecs.GetComponentID[capType22](w)
	archecs.GetComponentID[capType23](w)
	archecs.GetComponentID[capType24](w)
	archecs.GetComponentID[capType25](w)
	archecs.GetComponentID[capType26](w)
	archecs.GetComponentID[capType27](w)
	archecs.GetComponentID[capType28](w)
	archecs.GetComponentID[capType29](w)
	archecs.GetComponentID[capType30](w)
	archecs.GetComponentID[capType31](w)
	archecs.GetComponentID[capType32](w)
	archecs.GetComponentID[capType33](w)
	archecs.GetComponentID[capType34](w)
	archecs.GetComponentID[capType35](w)
	archecs.GetComponentID[capType36](w)
	archecs.GetComponentID[capType37](w)
	archecs.GetComponentID[capType38](w)
	archecs.GetComponentID[capType39](w)
	archecs.GetComponentID[capType40](w)
	archecs.GetComponentID[capType41](w)
	archecs.GetComponentID[capType42](w)
	archecs.GetComponentID[capType43](w)
	archecs.GetComponentID[capType44](w)
	archecs.GetComponentID[capType45](w)
	archecs.GetComponentID[capType46](w)
	archecs.GetComponentID[capType47](w)
	archecs.GetComponentID[capType48](w)
	archecs.GetComponentID[capType49](w)
	archecs.GetComponentID[capType50](w)
	archecs.GetComponentID[capType51](w)
	archecs.GetComponentID[capType52](w)
	archecs.GetComponentID[capType53](w)
	archecs.GetComponentID[capType54](w)
	archecs.GetComponentID[capType55](w)
	archecs.GetComponentID[capType56](w)
	archecs.GetComponentID[capType57](w)
	archecs.GetComponentID[capType58](w)
	archecs.GetComponentID[capType59](w)
	archecs.GetComponentID[capType60](w)
	archecs.GetComponentID[capType61](w)
	archecs.GetComponentID[capType62](w)
	archecs.GetComponentID[capType63](w)
	archecs.GetComponentID[capType64](w)
}
