package postcode

// HomeBase is the office reference point (CH5 4HS) all distance estimates are
// measured from.
var HomeBase = Coordinates{Latitude: 53.210058, Longitude: -3.053622}

// DefaultRecords is the embedded outcode reference table. Priorities rank how
// close an area sits to the home patch; lower values win ties when matching.
var DefaultRecords = []Record{
	{Outcode: "CH5", Label: "Deeside & Connah's Quay", Latitude: 53.2080, Longitude: -3.0498, Priority: 0,
		Areas: []string{"Connah's Quay", "Shotton", "Queensferry", "Hawarden", "Ewloe", "Sandycroft"}},
	{Outcode: "CH6", Label: "Flint", Latitude: 53.2480, Longitude: -3.1280, Priority: 1,
		Areas: []string{"Flint", "Oakenholt", "Bagillt"}},
	{Outcode: "CH7", Label: "Mold & Buckley", Latitude: 53.1610, Longitude: -3.1340, Priority: 1,
		Areas: []string{"Mold", "Buckley", "Mynydd Isa", "Northop", "Northop Hall", "Sychdyn", "New Brighton"}},
	{Outcode: "CH4", Label: "Broughton & Saltney", Latitude: 53.1670, Longitude: -2.9430, Priority: 1,
		Areas: []string{"Broughton", "Saltney", "Higher Kinnerton", "Pulford", "Dodleston", "Bretton"}},
	{Outcode: "CH1", Label: "Chester", Latitude: 53.2000, Longitude: -2.9000, Priority: 2,
		Areas: []string{"Chester", "Handbridge", "Curzon Park"}},
	{Outcode: "CH2", Label: "Hoole & Upton", Latitude: 53.2130, Longitude: -2.8800, Priority: 2,
		Areas: []string{"Hoole", "Upton", "Newton"}},
	{Outcode: "CH3", Label: "Tarvin & Waverton", Latitude: 53.1700, Longitude: -2.8000, Priority: 2,
		Areas: []string{"Tarvin", "Waverton", "Boughton", "Vicars Cross", "Christleton", "Tattenhall", "Huntington"}},
	{Outcode: "CH8", Label: "Holywell", Latitude: 53.2740, Longitude: -3.2230, Priority: 2,
		Areas: []string{"Holywell", "Greenfield", "Mostyn", "Carmel"}},
	{Outcode: "CH60", Label: "Heswall", Latitude: 53.3270, Longitude: -3.0980, Priority: 3,
		Areas: []string{"Heswall", "Gayton"}},
	{Outcode: "CH62", Label: "Bromborough", Latitude: 53.3220, Longitude: -2.9780, Priority: 3,
		Areas: []string{"Bromborough", "Port Sunlight", "Spital"}},
	{Outcode: "CH63", Label: "Bebington", Latitude: 53.3360, Longitude: -3.0090, Priority: 3,
		Areas: []string{"Bebington", "Thornton Hough", "Clatterbridge"}},
	{Outcode: "CH64", Label: "Neston", Latitude: 53.2880, Longitude: -3.0600, Priority: 3,
		Areas: []string{"Neston", "Parkgate", "Little Neston", "Willaston"}},
	{Outcode: "CH65", Label: "Ellesmere Port", Latitude: 53.2790, Longitude: -2.9030, Priority: 3,
		Areas: []string{"Ellesmere Port", "Whitby", "Overpool"}},
	{Outcode: "CH66", Label: "Great Sutton", Latitude: 53.2650, Longitude: -2.9390, Priority: 3,
		Areas: []string{"Great Sutton", "Little Sutton", "Childer Thornton"}},
	{Outcode: "LL11", Label: "Wrexham West", Latitude: 53.0590, Longitude: -3.0130, Priority: 4,
		Areas: []string{"Wrexham", "Brymbo", "Llay"}},
	{Outcode: "LL12", Label: "Rossett & Gresford", Latitude: 53.0850, Longitude: -2.9790, Priority: 4,
		Areas: []string{"Rossett", "Marford", "Gresford"}},
	{Outcode: "LL13", Label: "Wrexham South & Holt", Latitude: 53.0230, Longitude: -2.9730, Priority: 4,
		Areas: []string{"Holt", "Bangor-on-Dee", "Marchwiel"}},
	{Outcode: "LL14", Label: "Ruabon", Latitude: 52.9800, Longitude: -3.0500, Priority: 4,
		Areas: []string{"Ruabon", "Cefn Mawr", "Rhosllanerchrugog"}},
	{Outcode: "CW6", Label: "Tarporley", Latitude: 53.1610, Longitude: -2.6700, Priority: 4,
		Areas: []string{"Tarporley", "Kelsall", "Cotebrook"}},
	{Outcode: "SY13", Label: "Whitchurch", Latitude: 52.9670, Longitude: -2.6860, Priority: 4,
		Areas: []string{"Whitchurch", "Ash", "Alkington"}},
	{Outcode: "SY14", Label: "Malpas", Latitude: 53.0180, Longitude: -2.7650, Priority: 4,
		Areas: []string{"Malpas", "Tilston", "Threapwood", "Shocklach"}},
	{Outcode: "WA6", Label: "Frodsham", Latitude: 53.2770, Longitude: -2.7200, Priority: 4,
		Areas: []string{"Frodsham", "Helsby", "Kingsley"}},
	{Outcode: "WA7", Label: "Runcorn", Latitude: 53.3260, Longitude: -2.6960, Priority: 4,
		Areas: []string{"Runcorn", "Sandymoor", "Preston Brook"}},
	{Outcode: "WA8", Label: "Widnes", Latitude: 53.3800, Longitude: -2.7600, Priority: 4,
		Areas: []string{"Widnes", "Cronton", "Hough Green"}},
}

// DefaultAreas lists every served locality page, in the order each outcode's
// localities should be reported.
var DefaultAreas = []Area{
	{ID: "connahs-quay", Label: "Connah's Quay", Outcode: "CH5"},
	{ID: "shotton", Label: "Shotton", Outcode: "CH5"},
	{ID: "queensferry", Label: "Queensferry", Outcode: "CH5"},
	{ID: "hawarden", Label: "Hawarden", Outcode: "CH5"},
	{ID: "ewloe", Label: "Ewloe", Outcode: "CH5"},
	{ID: "deeside", Label: "Deeside", Outcode: "CH5"},
	{ID: "sandycroft", Label: "Sandycroft", Outcode: "CH5"},
	{ID: "flint", Label: "Flint", Outcode: "CH6"},
	{ID: "oakenholt", Label: "Oakenholt", Outcode: "CH6"},
	{ID: "bagillt", Label: "Bagillt", Outcode: "CH6"},
	{ID: "mold", Label: "Mold", Outcode: "CH7"},
	{ID: "buckley", Label: "Buckley", Outcode: "CH7"},
	{ID: "mynydd-isa", Label: "Mynydd Isa", Outcode: "CH7"},
	{ID: "northop", Label: "Northop", Outcode: "CH7"},
	{ID: "northop-hall", Label: "Northop Hall", Outcode: "CH7"},
	{ID: "new-brighton", Label: "New Brighton", Outcode: "CH7"},
	{ID: "sychdyn", Label: "Sychdyn", Outcode: "CH7"},
	{ID: "broughton", Label: "Broughton", Outcode: "CH4"},
	{ID: "saltney", Label: "Saltney", Outcode: "CH4"},
	{ID: "higher-kinnerton", Label: "Higher Kinnerton", Outcode: "CH4"},
	{ID: "pulford", Label: "Pulford", Outcode: "CH4"},
	{ID: "dodleston", Label: "Dodleston", Outcode: "CH4"},
	{ID: "bretton", Label: "Bretton", Outcode: "CH4"},
	{ID: "chester", Label: "Chester", Outcode: "CH1"},
	{ID: "handbridge", Label: "Handbridge", Outcode: "CH1"},
	{ID: "curzon-park", Label: "Curzon Park", Outcode: "CH1"},
	{ID: "hoole", Label: "Hoole", Outcode: "CH2"},
	{ID: "upton", Label: "Upton", Outcode: "CH2"},
	{ID: "newton", Label: "Newton", Outcode: "CH2"},
	{ID: "tarvin", Label: "Tarvin", Outcode: "CH3"},
	{ID: "waverton", Label: "Waverton", Outcode: "CH3"},
	{ID: "boughton", Label: "Boughton", Outcode: "CH3"},
	{ID: "vicars-cross", Label: "Vicars Cross", Outcode: "CH3"},
	{ID: "christleton", Label: "Christleton", Outcode: "CH3"},
	{ID: "tattenhall", Label: "Tattenhall", Outcode: "CH3"},
	{ID: "huntington", Label: "Huntington", Outcode: "CH3"},
	{ID: "holywell", Label: "Holywell", Outcode: "CH8"},
	{ID: "greenfield", Label: "Greenfield", Outcode: "CH8"},
	{ID: "heswall", Label: "Heswall", Outcode: "CH60"},
	{ID: "bromborough", Label: "Bromborough", Outcode: "CH62"},
	{ID: "bebington", Label: "Bebington", Outcode: "CH63"},
	{ID: "neston", Label: "Neston", Outcode: "CH64"},
	{ID: "parkgate", Label: "Parkgate", Outcode: "CH64"},
	{ID: "ellesmere-port", Label: "Ellesmere Port", Outcode: "CH65"},
	{ID: "great-sutton", Label: "Great Sutton", Outcode: "CH66"},
	{ID: "wrexham", Label: "Wrexham", Outcode: "LL11"},
	{ID: "rossett", Label: "Rossett", Outcode: "LL12"},
	{ID: "marford", Label: "Marford", Outcode: "LL12"},
	{ID: "gresford", Label: "Gresford", Outcode: "LL12"},
	{ID: "holt", Label: "Holt", Outcode: "LL13"},
	{ID: "ruabon", Label: "Ruabon", Outcode: "LL14"},
	{ID: "tarporley", Label: "Tarporley", Outcode: "CW6"},
	{ID: "kelsall", Label: "Kelsall", Outcode: "CW6"},
	{ID: "whitchurch", Label: "Whitchurch", Outcode: "SY13"},
	{ID: "malpas", Label: "Malpas", Outcode: "SY14"},
	{ID: "frodsham", Label: "Frodsham", Outcode: "WA6"},
	{ID: "helsby", Label: "Helsby", Outcode: "WA6"},
	{ID: "runcorn", Label: "Runcorn", Outcode: "WA7"},
	{ID: "widnes", Label: "Widnes", Outcode: "WA8"},
}

// DefaultResolver builds a resolver over the embedded reference data.
func DefaultResolver() *Resolver {
	return NewResolver(HomeBase, DefaultRecords, DefaultAreas)
}
