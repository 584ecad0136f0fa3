package registrationRepository

const (
	queryCreateRegistration = `
		INSERT INTO registrations (
			id,
			competition_id,
			competition_name,
			nama,
			gender,
			sabuk,
			tempat_tanggal_lahir,
			dojang,
			berat,
			tinggi,
			kategori,
			kelas,
			order_jersey,
			jersey_size,
			email,
			whatsapp,
			receipt_url,
			registered_at,
			created_at,
			updated_at
		) VALUES (
			:id,
			:competition_id,
			:competition_name,
			:nama,
			:gender,
			:sabuk,
			:tempat_tanggal_lahir,
			:dojang,
			:berat,
			:tinggi,
			:kategori,
			:kelas,
			:order_jersey,
			:jersey_size,
			:email,
			:whatsapp,
			:receipt_url,
			:registered_at,
			:created_at,
			:updated_at
		)
	`

	queryGetRegistrationByID = `
		SELECT
			id,
			competition_id,
			competition_name,
			nama,
			gender,
			sabuk,
			tempat_tanggal_lahir,
			dojang,
			berat,
			tinggi,
			kategori,
			kelas,
			order_jersey,
			jersey_size,
			email,
			whatsapp,
			receipt_url,
			registered_at,
			created_at,
			updated_at
		FROM registrations
		WHERE id = :id
	`

	queryListRegistrations = `
		SELECT
			id,
			competition_id,
			competition_name,
			nama,
			gender,
			sabuk,
			tempat_tanggal_lahir,
			dojang,
			berat,
			tinggi,
			kategori,
			kelas,
			order_jersey,
			jersey_size,
			email,
			whatsapp,
			receipt_url,
			registered_at,
			created_at,
			updated_at
		FROM registrations
		WHERE (:competition_id = '' OR competition_id = :competition_id)
		ORDER BY registered_at DESC
		LIMIT :limit OFFSET :offset
	`

	queryCountRegistrations = `
		SELECT COUNT(*)
		FROM registrations
		WHERE (:competition_id = '' OR competition_id = :competition_id)
	`

	queryUpdateReceiptURL = `
		UPDATE registrations
		SET receipt_url = :receipt_url,
			updated_at = :updated_at
		WHERE id = :id
	`
)
