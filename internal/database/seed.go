package database

import (
	"context"
	"database/sql"
	"fmt"

	"store_expiry_backend/internal/models"
	"store_expiry_backend/pkg/utils"
)

// seedStores is the chain's store directory, loaded when the stores table is empty.
var seedStores = []models.Store{
	{Code: "C42", Name: "CN AE DUB 15 NORTH SIDE B.BAY"},
	{Code: "C16", Name: "CT UAE DXB DUJA TOWER"},
	{Code: "818", Name: "SHA Al Fardan"},
	{Code: "834", Name: "SHA Nasseria"},
	{Code: "870", Name: "SHJ AL ZAHIA HUB"},
	{Code: "875", Name: "DXB LIVING LEGENDS"},
	{Code: "823", Name: "UAQ Umm Al Quwain"},
	{Code: "C34", Name: "Refraction Tower"},
	{Code: "872", Name: "MOBIMART BUS"},
	{Code: "855", Name: "RAK Al Dhait"},
	{Code: "844", Name: "DUB First Avenue"},
	{Code: "814", Name: "DUB JLT Palladium"},
	{Code: "829", Name: "ABD Al Raha Beach"},
	{Code: "882", Name: "SM UAE ABD MBZ"},
	{Code: "862", Name: "DUB NSHAMA"},
	{Code: "827", Name: "SHA Mirgab"},
	{Code: "C45", Name: "CN AE ABD AL RAHA CANAL"},
	{Code: "C15", Name: "HYDRA"},
	{Code: "868", Name: "Jumirah Park Club House"},
	{Code: "838", Name: "DUB Tecom I-Rise"},
	{Code: "C53", Name: "CN AE DXB BURJ AL SALAM"},
	{Code: "854", Name: "DUB JBR Rimal"},
	{Code: "C12", Name: "EMIRATES TOWER 7"},
	{Code: "812", Name: "DUB Tecom Vista"},
	{Code: "840", Name: "DUB Ranches 2 Souq"},
	{Code: "014", Name: "ABD Dalma Mall"},
	{Code: "061", Name: "ABD Deerfield"},
	{Code: "009", Name: "DUB Shindagha"},
	{Code: "072", Name: "DUB Festival City"},
	{Code: "005", Name: "RAK Manar Mall"},
	{Code: "071", Name: "Al Reem Mall"},
	{Code: "016", Name: "ABD Baniyas"},
	{Code: "851", Name: "DUB Discovery"},
	{Code: "067", Name: "ABD Masdar MAFP"},
	{Code: "008", Name: "SHA Sharjah City Ctr"},
	{Code: "874", Name: "water edge"},
	{Code: "849", Name: "ABD Paragon"},
	{Code: "069", Name: "AJM AL MURAD MALL"},
	{Code: "012", Name: "AIN Al Bawadi Mall"},
	{Code: "837", Name: "DUB Wasl Road"},
	{Code: "073", Name: "DUB Ibn Batuta"},
	{Code: "074", Name: "ABD Yas Island"},
	{Code: "003", Name: "DUB Deira City Ctr"},
	{Code: "064", Name: "DUB Meaisem City Center"},
	{Code: "006", Name: "ABD Marina Mall"},
	{Code: "015", Name: "DUB Mirdif City Ctr"},
	{Code: "865", Name: "ABD AL ZEINA"},
	{Code: "845", Name: "DUB Ranches 1 Village"},
	{Code: "004", Name: "ABD Airport Rd Saqr"},
	{Code: "066", Name: "DUB City Land"},
	{Code: "070", Name: "SHJ AL ZAHIA MALL"},
	{Code: "011", Name: "DUB MOE"},
	{Code: "007", Name: "AIN Al Jimmy Mall"},
	{Code: "C26", Name: "Gate Avenue DIFC"},
	{Code: "805", Name: "DUB Oasis Center"},
	{Code: "866", Name: "DXB MIRDIFF HILIS"},
	{Code: "876", Name: "Avenue Mall Nadd Al Shiba"},
	{Code: "881", Name: "SM AE DUB Green Views"},
	{Code: "831", Name: "DUB DIP"},
	{Code: "C40", Name: "CN AE DUB Binghatti Creek"},
	{Code: "C33", Name: "MAYAN"},
	{Code: "C38", Name: "CT UAE DXB SOCIO PARK"},
	{Code: "879", Name: "SM UAE DXB MIDTOWN BY DYAR"},
	{Code: "C20", Name: "IBIS TOWER"},
	{Code: "821", Name: "SHA Al Quoz"},
	{Code: "884", Name: "SM UAE DXB AMWAJ"},
	{Code: "C27", Name: "Tower 9"},
	{Code: "867", Name: "ABD GARDEN PLAZA"},
	{Code: "843", Name: "DUB MCC Science Park"},
	{Code: "826", Name: "SHA Al Juraina"},
	{Code: "825", Name: "DUB Marina Silvarene"},
	{Code: "077", Name: "HM UAE ABD AL MAFRAQ"},
	{Code: "860", Name: "DUB Marina Gate"},
	{Code: "850", Name: "DUB Jum Park"},
	{Code: "878", Name: "Carrefour Market Tilal Al Ghaf"},
	{Code: "060", Name: "FUJ Fujairah City Ctr"},
	{Code: "019", Name: "DUB Madina Mall"},
	{Code: "C24", Name: "Damac Prive"},
	{Code: "C09", Name: "Bunyan store"},
	{Code: "017", Name: "RAK Al Naeem City Ctr"},
	{Code: "C50", Name: "CN AE DUB DWTC"},
	{Code: "833", Name: "ABD Al Seef"},
	{Code: "065", Name: "AIN Al Ain Mall"},
	{Code: "824", Name: "DUB Burj Views"},
	{Code: "018", Name: "FUJ Safeer Fujairah"},
	{Code: "C49", Name: "CN AE DUB JEWEL"},
	{Code: "D03", Name: "MFC UAE Dubai"},
	{Code: "815", Name: "DUB Marina Crown"},
	{Code: "885", Name: "SM UAE DXB ALAREESH DFC"},
	{Code: "863", Name: "SM AE DUB Akoya Oxygen"},
	{Code: "853", Name: "DUB ReemRam"},
	{Code: "062", Name: "DUB Burjuman"},
	{Code: "877", Name: "Carrefour Amsaf (Super Market)"},
	{Code: "842", Name: "DUB DSO Souq Extra"},
	{Code: "002", Name: "AJM Ajman City Ctr"},
	{Code: "C48", Name: "CN AE DUB JLT ME DO RE TOWR"},
	{Code: "856", Name: "DUB Sunset Mall"},
	{Code: "857", Name: "DUB Springs Souq"},
	{Code: "852", Name: "DUB Goroob"},
	{Code: "880", Name: "SM UAE SHA AL JADA"},
}

// SeedStores fills the stores table from seedStores if, and only if, it is empty.
// It reports how many rows were inserted.
func SeedStores(ctx context.Context, db *sql.DB) (int, error) {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM stores`).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting stores: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	utils.LogInfo("Stores table is empty, populating with initial data", map[string]interface{}{"stores": len(seedStores)})

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to start seed transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO stores (store_code, store_name) VALUES ($1, $2)`)
	if err != nil {
		return 0, fmt.Errorf("preparing store insert: %w", err)
	}
	defer stmt.Close()

	for _, s := range seedStores {
		if _, err := stmt.ExecContext(ctx, s.Code, s.Name); err != nil {
			return 0, fmt.Errorf("inserting store %s: %w", s.Code, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing store seed: %w", err)
	}
	return len(seedStores), nil
}
