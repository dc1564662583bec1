package sqlite

// schema se aplica al abrir la base. Los decimales se guardan como TEXT con su
// representación canónica y la fecha de la factura como "YYYY-MM-DD HH:MM:SS".
const schema = `
CREATE TABLE IF NOT EXISTS company (
    id      INTEGER PRIMARY KEY AUTOINCREMENT,
    uuid    TEXT NOT NULL UNIQUE,
    name    TEXT NOT NULL,
    address TEXT NOT NULL,
    phone   TEXT NOT NULL,
    city    TEXT NOT NULL,
    state   TEXT NOT NULL,
    zipcode TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS items (
    id        INTEGER PRIMARY KEY AUTOINCREMENT,
    uuid      TEXT NOT NULL UNIQUE,
    item_name TEXT NOT NULL,
    rate      TEXT NOT NULL CHECK (CAST(rate AS REAL) >= 0)
);

CREATE TABLE IF NOT EXISTS bills (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    uuid       TEXT NOT NULL UNIQUE,
    date       TEXT NOT NULL,
    sl_number  INTEGER NOT NULL,
    company_id INTEGER NOT NULL,
    total      TEXT NOT NULL,
    FOREIGN KEY (company_id) REFERENCES company(id)
);

CREATE TABLE IF NOT EXISTS bill_items (
    id       INTEGER PRIMARY KEY AUTOINCREMENT,
    uuid     TEXT NOT NULL UNIQUE,
    bill_id  INTEGER NOT NULL,
    item_id  INTEGER NOT NULL,
    quantity INTEGER NOT NULL CHECK (quantity > 0),
    rate     TEXT NOT NULL CHECK (CAST(rate AS REAL) >= 0),
    amount   TEXT NOT NULL,
    FOREIGN KEY (bill_id) REFERENCES bills(id) ON DELETE CASCADE,
    FOREIGN KEY (item_id) REFERENCES items(id)
);

CREATE INDEX IF NOT EXISTS idx_bill_items_bill_id ON bill_items(bill_id);
`
