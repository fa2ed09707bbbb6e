package salesdata

import (
	"reflect"
	"testing"
)

func sampleTable() *Table {
	return NewTable("test", []Record{
		{Brand: "Toyota", Sales: [3]float64{500, 520, 540}, Revenue: [3]float64{50, 55, 60}, NetProfit: [3]float64{5, 6, 7}},
		{Brand: "Ford", Sales: [3]float64{300, 310, 320}, Revenue: [3]float64{40, 42, 44}, NetProfit: [3]float64{1, 2, 3}},
		{Brand: "Toyota", Sales: [3]float64{1, 2, 3}, Revenue: [3]float64{4, 5, 6}, NetProfit: [3]float64{7, 8, 9}},
	})
}

func TestTable_ColumnsInFileOrder(t *testing.T) {
	tbl := sampleTable()
	if got := tbl.Brands(); !reflect.DeepEqual(got, []string{"Toyota", "Ford", "Toyota"}) {
		t.Fatalf("brands %v", got)
	}
	if got := tbl.Revenue(2024); !reflect.DeepEqual(got, []float64{60, 44, 6}) {
		t.Fatalf("revenue 2024 %v", got)
	}
	if got := tbl.NetProfit(2022); !reflect.DeepEqual(got, []float64{5, 1, 7}) {
		t.Fatalf("profit 2022 %v", got)
	}
	if got := tbl.Sales(1999); !reflect.DeepEqual(got, []float64{0, 0, 0}) {
		t.Fatalf("unknown year should give zeros, got %v", got)
	}
}

func TestTable_AccessorsReturnCopies(t *testing.T) {
	tbl := sampleTable()
	s := tbl.Sales(2022)
	s[0] = -1
	recs := tbl.Records()
	recs[0].Brand = "changed"
	if tbl.Record(0).Sales[0] != 500 || tbl.Record(0).Brand != "Toyota" {
		t.Fatalf("table mutated through accessor: %+v", tbl.Record(0))
	}
}

func TestTable_DuplicateBrands(t *testing.T) {
	if got := sampleTable().DuplicateBrands(); !reflect.DeepEqual(got, []string{"Toyota"}) {
		t.Fatalf("duplicates %v", got)
	}
}

func TestColumns(t *testing.T) {
	cols := Columns()
	if len(cols) != 10 || cols[0] != "Brand" || cols[1] != "2022 Sales (millions)" || cols[9] != "2024 Net Profit (USD billion)" {
		t.Fatalf("unexpected columns %v", cols)
	}
}
