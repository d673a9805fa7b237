package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"denizkartim/internal/core"
)

const fixture = `{
  "_meta": [{
    "aciklama": "Mock veri",
    "hhs": "DenizBank",
    "hhsKod": "0134",
    "bankaAdi": "DenizBank A.Ş.",
    "yos": "DenizKartım",
    "izinTurleri": ["01", "02"],
    "rizaOlusTrh": "2026-01-15T10:00:00+03:00",
    "erisimIzniSonTrh": "2026-07-15T10:00:00+03:00",
    "ohkTip": "B"
  }],
  "hesaplar": [{
    "hspRef": "HSP001",
    "hspNo": "1234567",
    "hspShb": "210",
    "subeAdi": "Kadıköy",
    "kisaAd": null,
    "prBrm": "TRY",
    "hspTur": "K",
    "hspTip": "VDS",
    "hspUrunAdi": "Vadesiz Mevduat",
    "hspDrm": "A",
    "hspAclsTrh": "2019-03-01"
  }],
  "bakiyeler": [{
    "hspRef": "HSP001",
    "bkyTtr": "-1250.75",
    "blkTtr": null,
    "prBrm": "TRY",
    "bkyZmn": "2026-04-18T08:00:00+03:00",
    "krdHsp": {"kulKrdTtr": "1250.75", "krdDhlGstr": "E"}
  }],
  "hesapIslemleri": {
    "HSP001": [{
      "islNo": "ISL001",
      "refNo": "RF001",
      "islTtr": "25000.00",
      "gnclBky": "31420.50",
      "prBrm": "TRY",
      "islGrckZaman": "2026-04-15T09:30:00+03:00",
      "kanal": "EFT",
      "brcAlc": "A",
      "islTur": "TRANSFER",
      "islAmc": "MAAS",
      "odmStmNo": null,
      "islAcklm": "MAAS ODEMESI - ACME A.S.",
      "krsTrf": {"krsMskIBAN": null, "krsUnvan": "ACME A.S.", "krsKimlikVrs": null}
    }]
  },
  "kartlar": [{
    "kartRef": "KRT001",
    "kartNo": "465895******4532",
    "asilKartNo": null,
    "kartTipi": "K",
    "altKartTipi": "A",
    "kartFormu": "F",
    "kartTuru": "I",
    "kartStatu": "A",
    "kartSema": "VISA",
    "kartUrunAdi": "Bonus Platinum",
    "hhsKod": "0134"
  }],
  "kartDetaylari": {
    "KRT001": {
      "TRY": {
        "toplamLimit": "20000.00",
        "kullanilabilirLimit": "15000.00",
        "donemIciHareketToplami": "-3200.00",
        "ekstreBorcu": "-5000.00",
        "kalanEkstreBorcu": "-5000.00",
        "asgariOdemeTutari": "-1000.00",
        "kalanAsgariOdemeTutari": "-1000.00",
        "hesapKesimTarihi": "2026-04-10",
        "sonOdemeTarihi": "2026-04-20",
        "nakitCekimLimiti": "4000.00",
        "kalanNakitCekimLimiti": "4000.00",
        "prBrm": "TRY",
        "puanBilgisi": [{"puanDegeri": "154.30", "puanTipi": "BONUS"}],
        "kalanToplamTaksitTutari": "-2400.00",
        "donemTaksitTutarBilgisi": [
          {"donem": 0, "taksitTutari": "-400.00"},
          {"donem": 1, "taksitTutari": "-400.00"}
        ]
      }
    }
  },
  "kartHareketleri": {
    "KRT001": {
      "TRY": {
        "donem": 202604,
        "hareketBilgileri": [{
          "islemNo": "KH001",
          "islemTutari": {"ttr": "229.99", "prBrm": "TRY"},
          "orijinalIslemTutari": null,
          "islemTarihi": "2026-04-12T21:14:00+03:00",
          "borcAlacak": "B",
          "islemAciklamasi": "NETFLIX.COM",
          "islemPuanBilgileri": [],
          "toplamTaksitTutari": null,
          "toplamTaksitSayisi": null,
          "taksitDonemi": null,
          "saticiKategoriKodu": "4899"
        }]
      }
    }
  },
  "oncekiDonemOrnekleri": {
    "KRT001": {
      "TRY": {
        "donem": 202603,
        "hareketBilgileri": [{
          "islemNo": "OD001",
          "islemTutari": {"ttr": "229.99", "prBrm": "TRY"},
          "islemTarihi": "2026-03-12T21:10:00+03:00",
          "borcAlacak": "B",
          "islemAciklamasi": "NETFLIX.COM",
          "saticiKategoriKodu": "4899"
        }]
      }
    }
  }
}`

func TestDecode(t *testing.T) {
	ds, err := Decode([]byte(fixture))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if len(ds.Meta) != 1 || ds.Meta[0].BankCode != "0134" {
		t.Errorf("meta not decoded: %+v", ds.Meta)
	}

	if len(ds.Accounts) != 1 {
		t.Fatalf("accounts = %d, want 1", len(ds.Accounts))
	}
	acc := ds.Accounts[0]
	if acc.ShortName != "" || acc.DisplayName() != "Vadesiz Mevduat" {
		t.Errorf("null kisaAd must fall back to product name, got %q", acc.DisplayName())
	}

	if len(ds.Balances) != 1 {
		t.Fatalf("balances = %d, want 1", len(ds.Balances))
	}
	bal := ds.Balances[0]
	if bal.Amount.String() != "-1250.75" {
		t.Errorf("balance amount = %s", bal.Amount)
	}
	if bal.Credit == nil || !bal.Credit.IncludedInBalance {
		t.Errorf("overdraft facility not decoded: %+v", bal.Credit)
	}

	txns := ds.AccountTransactions["HSP001"]
	if len(txns) != 1 {
		t.Fatalf("account transactions = %d, want 1", len(txns))
	}
	if txns[0].Direction != core.Credit || txns[0].Counterparty.Name != "ACME A.S." {
		t.Errorf("account transaction mis-decoded: %+v", txns[0])
	}

	detail := ds.CardDetails["KRT001"]["TRY"]
	if detail.RemainingStatementDebt.String() != "-5000" {
		t.Errorf("statement debt = %s", detail.RemainingStatementDebt)
	}
	if detail.DueDate != time.Date(2026, 4, 20, 0, 0, 0, 0, time.UTC) {
		t.Errorf("due date = %v", detail.DueDate)
	}
	if len(detail.InstallmentSchedule) != 2 || detail.InstallmentSchedule[1].Period != 1 {
		t.Errorf("installment schedule mis-decoded: %+v", detail.InstallmentSchedule)
	}

	cur := ds.CardTransactions["KRT001"]["TRY"]
	if len(cur.Transactions) != 1 {
		t.Fatalf("card transactions = %d, want 1", len(cur.Transactions))
	}
	txn := cur.Transactions[0]
	if txn.InstallmentCount != 0 || txn.IsInstallment() {
		t.Errorf("null taksit sayisi must decode to plain purchase: %+v", txn)
	}
	if txn.MCC != "4899" || txn.Amount.Value.String() != "229.99" {
		t.Errorf("card transaction mis-decoded: %+v", txn)
	}

	prev := ds.PreviousPeriods["KRT001"]["TRY"]
	if prev.Period != 202603 || len(prev.Transactions) != 1 {
		t.Errorf("previous period mis-decoded: %+v", prev)
	}
}

func TestDecodeRejectsMalformedAmount(t *testing.T) {
	bad := `{"bakiyeler": [{"hspRef": "X", "bkyTtr": "not-a-number", "prBrm": "TRY", "bkyZmn": "2026-01-01"}]}`
	if _, err := Decode([]byte(bad)); err == nil {
		t.Fatal("expected parse failure for malformed amount")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "userdata.json")
	if err := os.WriteFile(path, []byte(fixture), 0o644); err != nil {
		t.Fatal(err)
	}

	ds, err := New(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(ds.Cards) != 1 || ds.Cards[0].Ref != "KRT001" {
		t.Errorf("cards mis-loaded: %+v", ds.Cards)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := New("/does/not/exist.json").Load(context.Background()); err == nil {
		t.Fatal("expected error for missing fixture")
	}
}
