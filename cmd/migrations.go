package cmd

import (
	"fmt"

	"gorm.io/gorm"

	"logistics/internal/adapters/out/postgres/employeerepo"
	"logistics/internal/adapters/out/postgres/methodrepo"
	"logistics/internal/adapters/out/postgres/movementrepo"
	"logistics/internal/adapters/out/postgres/returnrepo"
	"logistics/internal/adapters/out/postgres/shipmentrepo"
	"logistics/internal/adapters/out/postgres/warehouserepo"
)

// foreignKeys are added with raw DDL because the persistence DTOs are flat
// structs without GORM associations. Each statement is guarded so migration
// stays re-runnable.
var foreignKeys = []struct {
	constraint string
	ddl        string
}{
	{
		constraint: "fk_shipments_method",
		ddl: "ALTER TABLE shipments ADD CONSTRAINT fk_shipments_method " +
			"FOREIGN KEY (method_id) REFERENCES shipping_methods (id)",
	},
	{
		constraint: "fk_shipment_statuses_shipment",
		ddl: "ALTER TABLE shipment_statuses ADD CONSTRAINT fk_shipment_statuses_shipment " +
			"FOREIGN KEY (shipment_id) REFERENCES shipments (id)",
	},
	{
		constraint: "fk_shipment_statuses_employee",
		ddl: "ALTER TABLE shipment_statuses ADD CONSTRAINT fk_shipment_statuses_employee " +
			"FOREIGN KEY (employee_id) REFERENCES employees (id)",
	},
	{
		constraint: "fk_returns_shipment",
		ddl: "ALTER TABLE returns ADD CONSTRAINT fk_returns_shipment " +
			"FOREIGN KEY (shipment_id) REFERENCES shipments (id)",
	},
	{
		constraint: "fk_return_lines_return",
		ddl: "ALTER TABLE return_lines ADD CONSTRAINT fk_return_lines_return " +
			"FOREIGN KEY (return_id) REFERENCES returns (id)",
	},
	{
		constraint: "fk_stock_movements_warehouse",
		ddl: "ALTER TABLE stock_movements ADD CONSTRAINT fk_stock_movements_warehouse " +
			"FOREIGN KEY (warehouse_id) REFERENCES warehouses (id)",
	},
	{
		constraint: "fk_stock_movements_employee",
		ddl: "ALTER TABLE stock_movements ADD CONSTRAINT fk_stock_movements_employee " +
			"FOREIGN KEY (employee_id) REFERENCES employees (id)",
	},
}

// RunMigrations creates or updates the database schema.
func RunMigrations(db *gorm.DB) error {
	err := db.AutoMigrate(
		&methodrepo.MethodDTO{},
		&warehouserepo.WarehouseDTO{},
		&employeerepo.EmployeeDTO{},
		&shipmentrepo.ShipmentDTO{},
		&shipmentrepo.StatusRecordDTO{},
		&returnrepo.ReturnDTO{},
		&returnrepo.ReturnLineDTO{},
		&movementrepo.MovementDTO{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	for _, fk := range foreignKeys {
		stmt := fmt.Sprintf(`DO $$
BEGIN
	IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = '%s') THEN
		%s;
	END IF;
END $$`, fk.constraint, fk.ddl)

		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("add constraint %s: %w", fk.constraint, err)
		}
	}

	return nil
}
