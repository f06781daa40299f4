package fill

import "brickwork/internal/core"

// Program names as registered. Registration order below is the canonical
// index order the scheduler sees.
const (
	NameScanLine       = "scan-line"
	NameScanSpiral     = "scan-spiral"
	NameScanDiagonal   = "scan-diagonal"
	NameScanRadiation  = "scan-radiation"
	NameSwipeLine      = "swipe-line"
	NameSwipeDiagonal  = "swipe-diagonal"
	NameSwipeRadiation = "swipe-radiation"
)

func init() {
	core.Register(NameScanLine, func(canvas core.Canvas, cfg map[string]string) core.Program {
		return NewLineScan(canvas, FromMap(cfg))
	})
	core.Register(NameScanSpiral, func(canvas core.Canvas, cfg map[string]string) core.Program {
		return NewSpiralScan(canvas, FromMap(cfg))
	})
	core.Register(NameScanDiagonal, func(canvas core.Canvas, cfg map[string]string) core.Program {
		return NewDiagonalScan(canvas, FromMap(cfg))
	})
	core.Register(NameScanRadiation, func(canvas core.Canvas, cfg map[string]string) core.Program {
		return NewRadiationScan(canvas, FromMap(cfg))
	})
	core.Register(NameSwipeLine, func(canvas core.Canvas, cfg map[string]string) core.Program {
		return NewLineSwipe(canvas, FromMap(cfg))
	})
	core.Register(NameSwipeDiagonal, func(canvas core.Canvas, cfg map[string]string) core.Program {
		return NewDiagonalSwipe(canvas, FromMap(cfg))
	})
	core.Register(NameSwipeRadiation, func(canvas core.Canvas, cfg map[string]string) core.Program {
		return NewRadiationSwipe(canvas, FromMap(cfg))
	})
}
