package styles

// Tip: To find icons use https://github.com/loichyan/nerdfix

var (
	IconBook    = "\uf02d" // 
	IconSearch  = "\uf002" // 
	IconHome    = "\uf015" // 
	IconPen     = "\uf040" // 
	IconClock   = "\uf017" // 
	IconCompass = "\uf14e" // 
	IconFile    = "\uf15c" // 
	IconTrend   = "\uf201" // 
	IconEdit    = "\uf044" // 
	IconEye     = "\uf06e" // 
	IconSave    = "\uf0c7" // 
	IconSend    = "\uf1d8" // 
	IconMenu    = "\uf0c9" // 
)

// Sidebar toggle glyphs
var (
	IconChevronLeft  = "\uf053" // 
	IconChevronRight = "\uf054" // 
)

// Notification icons
var (
	IconNotifyInfo    = "\uf05a" // 
	IconNotifyWarning = "\uf071" // 
	IconNotifyError   = "\uf057" // 
)
