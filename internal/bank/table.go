package bank

// Info is a static lookup table entry mapping a family of VPA handle aliases
// to bank metadata. Loaded once at process start, immutable.
type Info struct {
	Handles    []string
	Name       string
	IFSCPrefix string
	Color      string
}

// vpaBankTable is ordered: resolution is first-match-wins, so earlier rows win
// when one alias is a substring of another (e.g. "okicici" before "icici").
// Table order is a tie-break, not a semantic signal.
var vpaBankTable = []Info{
	{Handles: []string{"okhdfcbank"}, Name: "HDFC Bank", IFSCPrefix: "HDFC", Color: "#004C8F"},
	{Handles: []string{"okicici"}, Name: "ICICI Bank", IFSCPrefix: "ICIC", Color: "#B02A30"},
	{Handles: []string{"oksbi"}, Name: "State Bank of India", IFSCPrefix: "SBIN", Color: "#22277A"},
	{Handles: []string{"okaxis"}, Name: "Axis Bank", IFSCPrefix: "UTIB", Color: "#97144D"},
	{Handles: []string{"ybl", "ibl", "axl"}, Name: "PhonePe (Yes Bank)", IFSCPrefix: "YESB", Color: "#5F259F"},
	{Handles: []string{"paytm"}, Name: "Paytm Payments Bank", IFSCPrefix: "PYTM", Color: "#00BAF2"},
	{Handles: []string{"kotak"}, Name: "Kotak Mahindra Bank", IFSCPrefix: "KKBK", Color: "#EE3224"},
	{Handles: []string{"indus"}, Name: "IndusInd Bank", IFSCPrefix: "INDB", Color: "#006DB7"},
	{Handles: []string{"rbl"}, Name: "RBL Bank", IFSCPrefix: "RATN", Color: "#E31837"},
	{Handles: []string{"pnb"}, Name: "Punjab National Bank", IFSCPrefix: "PUNB", Color: "#FF6600"},
	{Handles: []string{"federal"}, Name: "Federal Bank", IFSCPrefix: "FDRL", Color: "#003087"},
	{Handles: []string{"idbi"}, Name: "IDBI Bank", IFSCPrefix: "IBKL", Color: "#00A651"},
	{Handles: []string{"aubank"}, Name: "AU Small Finance Bank", IFSCPrefix: "AUBL", Color: "#E4002B"},
	{Handles: []string{"icici"}, Name: "ICICI Bank", IFSCPrefix: "ICIC", Color: "#B02A30"},
	{Handles: []string{"hdfc"}, Name: "HDFC Bank", IFSCPrefix: "HDFC", Color: "#004C8F"},
	{Handles: []string{"sbi"}, Name: "State Bank of India", IFSCPrefix: "SBIN", Color: "#22277A"},
	{Handles: []string{"axis"}, Name: "Axis Bank", IFSCPrefix: "UTIB", Color: "#97144D"},
	{Handles: []string{"upi"}, Name: "BHIM UPI (SBI)", IFSCPrefix: "SBIN", Color: "#22277A"},
}
