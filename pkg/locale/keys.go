package locale

// Key identifies one message in a locale table.
type Key string

// The fixed message key set. Every registered table must supply all of
// them; Validate enforces this.
const (
	KeyClose            Key = "close"
	KeyOpen             Key = "open"
	KeyMenu             Key = "menu"
	KeyDialog           Key = "dialog"
	KeyLoading          Key = "loading"
	KeyLoaded           Key = "loaded"
	KeyError            Key = "error"
	KeyWarning          Key = "warning"
	KeySuccess          Key = "success"
	KeyInfo             Key = "info"
	KeySelected         Key = "selected"
	KeyDeselected       Key = "deselected"
	KeyExpanded         Key = "expanded"
	KeyCollapsed        Key = "collapsed"
	KeyChecked          Key = "checked"
	KeyUnchecked        Key = "unchecked"
	KeyOn               Key = "on"
	KeyOff              Key = "off"
	KeyRequired         Key = "required"
	KeyOptional         Key = "optional"
	KeySearch           Key = "search"
	KeyNoResults        Key = "noResults"
	KeyResultFound      Key = "resultFound"
	KeyResultsFound     Key = "resultsFound"
	KeyPage             Key = "page"
	KeyOf               Key = "of"
	KeyNext             Key = "next"
	KeyPrevious         Key = "previous"
	KeyFirst            Key = "first"
	KeyLast             Key = "last"
	KeySortedAscending  Key = "sortedAscending"
	KeySortedDescending Key = "sortedDescending"
	KeyProgress         Key = "progress"
	KeySubmit           Key = "submit"
	KeyCancel           Key = "cancel"
	KeyHelp             Key = "help"
	KeySettings         Key = "settings"
)

// RequiredKeys lists every key a complete table must define.
var RequiredKeys = []Key{
	KeyClose, KeyOpen, KeyMenu, KeyDialog,
	KeyLoading, KeyLoaded, KeyError, KeyWarning, KeySuccess, KeyInfo,
	KeySelected, KeyDeselected, KeyExpanded, KeyCollapsed,
	KeyChecked, KeyUnchecked, KeyOn, KeyOff,
	KeyRequired, KeyOptional,
	KeySearch, KeyNoResults, KeyResultFound, KeyResultsFound,
	KeyPage, KeyOf, KeyNext, KeyPrevious, KeyFirst, KeyLast,
	KeySortedAscending, KeySortedDescending, KeyProgress,
	KeySubmit, KeyCancel, KeyHelp, KeySettings,
}
